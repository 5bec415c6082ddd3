package afterschoolserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	orderhttpmapper "github.com/Apurer/afterschool-api/internal/domains/store/adapters/http/mapper"
	apierrors "github.com/Apurer/afterschool-api/internal/shared/errors"
)

// Post /order
// Stores the request body as a new order
func (r *Router) PlaceOrder(c *gin.Context) {
	fields, err := bindOrderFields(c)
	if err != nil {
		r.respondFailure(c, apierrors.ErrPlaceOrder, err)
		return
	}
	if _, err := r.orders.PlaceOrder(c.Request.Context(), fields); err != nil {
		r.respondFailure(c, apierrors.ErrPlaceOrder, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.NewOrderPlaced())
}

// bindOrderFields decodes a JSON body. An empty body or a non-JSON content type
// yields an empty order, only malformed JSON is an error.
func bindOrderFields(c *gin.Context) (map[string]any, error) {
	if c.Request.Body == nil || c.Request.ContentLength == 0 || c.ContentType() != binding.MIMEJSON {
		return map[string]any{}, nil
	}
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}
