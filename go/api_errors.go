package afterschoolserver

import (
	"github.com/gin-gonic/gin"

	apierrors "github.com/Apurer/afterschool-api/internal/shared/errors"
)

// respondFailure logs the cause and sends the route's fixed error body.
func (r *Router) respondFailure(c *gin.Context, failure apierrors.Failure, err error) {
	r.responder.Fail(c, failure, err)
}
