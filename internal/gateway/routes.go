package gateway

func (s *Server) routes() {
	s.router.GET("/status", s.handleStatus)

	amm := s.router.Group("/amm")
	amm.POST("/price", s.handlePrice)
	amm.POST("/trade", s.handleTrade)
}
