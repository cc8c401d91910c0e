package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusCourseAccepted is the success code for course create/update. 210
// is not a registered HTTP status, but it is what the existing client
// contract expects, so it is kept as-is.
const StatusCourseAccepted = 210

// respondSuccess writes the success envelope at the given status code
func respondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"status": "success",
		"data":   data,
	})
}

// respondFailed writes the failure envelope at the given status code
func respondFailed(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"status":  "failed",
		"message": message,
	})
}

// respondInternal logs the underlying error and answers with a generic
// 500; the cause never reaches the response body.
func respondInternal(c *gin.Context, err error) {
	log.Printf("ERROR: %v", err)
	respondFailed(c, http.StatusInternalServerError, "internal server error")
}

// NotFoundHandler answers unmatched method/path combinations
func NotFoundHandler(c *gin.Context) {
	respondFailed(c, http.StatusNotFound, "route not found")
}
