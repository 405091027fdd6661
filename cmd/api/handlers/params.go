package handlers

import (
	"strconv"

	"VidTube.com/pkg/query"
	"github.com/cloudwego/hertz/pkg/app"
)

func pagination(c *app.RequestContext) query.Page {
	num, _ := strconv.ParseInt(c.Query("page"), 10, 64)
	size, _ := strconv.ParseInt(c.Query("size"), 10, 64)
	return query.NormalizePage(num, size)
}

func pathID(c *app.RequestContext, name string) int64 {
	id, _ := strconv.ParseInt(c.Param(name), 10, 64)
	return id
}
