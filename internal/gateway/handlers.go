package gateway

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"swapgate/internal/connector"
)

type errorBody struct {
	Message   string `json:"message"`
	ErrorCode int    `json:"errorCode"`
}

func (s *Server) writeError(c *gin.Context, err error) {
	if ge, ok := connector.AsGatewayError(err); ok {
		c.JSON(ge.Status, errorBody{Message: ge.Message, ErrorCode: ge.Code})
		return
	}
	s.log.Error().Err(err).Msg("unclassified error reached the gateway")
	unknown := connector.NewUnknown()
	c.JSON(unknown.Status, errorBody{Message: unknown.Message, ErrorCode: unknown.Code})
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UnixMilli(),
	})
}

func (s *Server) handlePrice(c *gin.Context) {
	var req connector.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Message: "malformed price request: " + err.Error(), ErrorCode: connector.CodeUnknown})
		return
	}

	amm, err := s.registry.Get(req.Chain, req.Network)
	if err != nil {
		s.writeError(c, err)
		return
	}

	resp, err := amm.Price(c.Request.Context(), &req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleTrade(c *gin.Context) {
	var req connector.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Message: "malformed trade request: " + err.Error(), ErrorCode: connector.CodeUnknown})
		return
	}

	amm, err := s.registry.Get(req.Chain, req.Network)
	if err != nil {
		s.writeError(c, err)
		return
	}

	resp, err := amm.Trade(c.Request.Context(), &req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
