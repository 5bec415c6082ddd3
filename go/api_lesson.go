package afterschoolserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	lessonhttpmapper "github.com/Apurer/afterschool-api/internal/domains/lessons/adapters/http/mapper"
	apierrors "github.com/Apurer/afterschool-api/internal/shared/errors"
)

var errMissingSpaces = errors.New("spaces is required")

// Get /lessons
// Lists every lesson
func (r *Router) GetLessons(c *gin.Context) {
	lessons, err := r.lessons.ListLessons(c.Request.Context())
	if err != nil {
		r.respondFailure(c, apierrors.ErrFetchLessons, err)
		return
	}
	c.JSON(http.StatusOK, lessonhttpmapper.FromDomainLessons(lessons))
}

// Get /search
// Finds lessons whose subject, location, price or spaces match q
func (r *Router) SearchLessons(c *gin.Context) {
	lessons, err := r.lessons.SearchLessons(c.Request.Context(), c.Query("q"))
	if err != nil {
		r.respondFailure(c, apierrors.ErrSearch, err)
		return
	}
	c.JSON(http.StatusOK, lessonhttpmapper.FromDomainLessons(lessons))
}

// Put /update/:id
// Overwrites the remaining spaces of a lesson
func (r *Router) UpdateLesson(c *gin.Context) {
	var payload lessonhttpmapper.UpdateSpaces
	if err := c.ShouldBindJSON(&payload); err != nil {
		r.respondFailure(c, apierrors.ErrUpdateLesson, err)
		return
	}
	if payload.Spaces == nil {
		r.respondFailure(c, apierrors.ErrUpdateLesson, errMissingSpaces)
		return
	}
	if err := r.lessons.UpdateLessonSpaces(c.Request.Context(), c.Param("id"), *payload.Spaces); err != nil {
		r.respondFailure(c, apierrors.ErrUpdateLesson, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
