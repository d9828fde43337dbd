package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"strategy-builder/internal/catalog"
	"strategy-builder/internal/errors"
	"strategy-builder/internal/models"
	"strategy-builder/internal/store"
	"strategy-builder/internal/stream"
)

// SubmitRequest is the body of POST /api/strategies.
type SubmitRequest struct {
	models.StrategySpec
	UserID         string `json:"userId"`
	IsPaperTrading bool   `json:"isPaperTrading"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"indicators": s.catalog.Len(),
		"time":       time.Now().UTC(),
	})
}

// handleGetIndicators serves the catalog read boundary.
func (s *Server) handleGetIndicators(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.NewPayload(s.catalog))
}

// handleCreateStrategy accepts an assembled strategy spec for
// persistence and acknowledges with the created record.
func (s *Server) handleCreateStrategy(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed strategy document"})
		return
	}

	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	if req.Name == "" || req.Symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "strategy name and symbol are required"})
		return
	}

	record := &store.StrategyRecord{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		Name:           req.Name,
		StrategyType:   req.StrategyType,
		Symbol:         req.Symbol,
		IsPaperTrading: req.IsPaperTrading,
		Spec:           req.StrategySpec,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.store.Save(c.Request.Context(), record); err != nil {
		s.log.Error().Err(err).Str("strategy", req.Name).Msg("Failed to persist strategy")
		s.hub.Publish(stream.Event{
			Type:    stream.EventSubmissionFailed,
			Name:    record.Name,
			Symbol:  record.Symbol,
			Message: "failed to persist strategy",
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist strategy"})
		return
	}

	s.hub.Publish(stream.Event{
		Type:       stream.EventStrategyCreated,
		StrategyID: record.ID,
		Name:       record.Name,
		Symbol:     record.Symbol,
	})
	s.log.Info().Str("record_id", record.ID).Str("strategy", record.Name).Msg("Strategy created")

	c.JSON(http.StatusCreated, models.SubmissionAck{
		ID:        record.ID,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
	})
}

func (s *Server) handleListStrategies(c *gin.Context) {
	filter := store.RecordFilter{
		UserID:       c.Query("user_id"),
		Symbol:       c.Query("symbol"),
		StrategyType: models.StrategyType(c.Query("strategy_type")),
	}

	records, err := s.store.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list strategies"})
		return
	}
	if records == nil {
		records = []store.StrategyRecord{}
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) handleGetStrategy(c *gin.Context) {
	record, err := s.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errors.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "strategy not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load strategy"})
		return
	}
	c.JSON(http.StatusOK, record)
}

func (s *Server) handleDeleteStrategy(c *gin.Context) {
	id := c.Param("id")
	if err := s.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errors.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "strategy not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete strategy"})
		return
	}

	s.hub.Publish(stream.Event{Type: stream.EventStrategyDeleted, StrategyID: id})
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleEvents bridges the event hub onto a websocket connection.
func (s *Server) handleEvents(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	sub, cancel := s.hub.Subscribe()
	defer cancel()

	// drain client reads so close frames are processed
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for event := range sub.Channel {
		if err := conn.WriteJSON(event); err != nil {
			return
		}
	}
}
