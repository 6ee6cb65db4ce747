package server

import (
	"net/http"
	"strconv"
	"strings"

	callbackdomain "github.com/consint/callbackd/internal/callback/domain"
	"github.com/gin-gonic/gin"
)

// ReceiveCallback accepts one asynchronous result payload from the scanning
// provider.
func (s *Server) ReceiveCallback(c *gin.Context) {
	var req callbackdomain.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.callbackSvc.Ingest(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) ListResults(c *gin.Context) {
	var query struct {
		Limit  int `form:"limit,default=100"`
		Offset int `form:"offset,default=0"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.callbackSvc.ListResults(c.Request.Context(), callbackdomain.ListResultsRequest{
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetResultsByCustomer(c *gin.Context) {
	customerID := strings.TrimSpace(c.Param("customer_id"))

	resp, err := s.callbackSvc.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) DeleteResult(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("callback_id")), 10, 64)
	if err != nil {
		AbortWithError(c, newValidationError("callback_id", "invalid_callback_id", "callback id must be an integer"))
		return
	}

	resp, err := s.callbackSvc.Delete(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
