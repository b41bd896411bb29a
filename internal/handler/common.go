package handler // HTTP handlers for the CineManager API

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// dbTimeout bounds every store call made from a handler.
const dbTimeout = 5 * time.Second

// parseID parses the :id path parameter.  Non-numeric or absent values fail
// before any store access.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// bindPayload decodes the JSON body into a generic map so the schema
// validator can check types and reject unknown keys.  An absent body yields
// a nil map, which validates like an empty object.
func bindPayload(c echo.Context) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := c.Bind(&body); err != nil {
		return nil, err
	}
	return body, nil
}
