package api

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"goplots/domain/chart"
	"goplots/domain/series"
	"goplots/domain/stats"
	"goplots/internal/errors"
	"goplots/models"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// handleRender plots a raw JSON array of numbers.
func (s *Server) handleRender(c *gin.Context) {
	body, err := s.readBody(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	values, err := models.DecodeValues(body)
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.renderLine(c, values)
}

// handleRenderCSV plots every numeric token of a CSV body.
func (s *Server) handleRenderCSV(c *gin.Context) {
	body, err := s.readBody(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if !utf8.Valid(body) {
		s.respondError(c, errors.DecodeError("body must be UTF-8 encoded CSV text"))
		return
	}
	values, err := series.ExtractCSV(string(body))
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.renderLine(c, values)
}

// handleRenderXLSX plots every numeric cell of the first worksheet.
func (s *Server) handleRenderXLSX(c *gin.Context) {
	body, err := s.readBody(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	values, err := s.workbook.Extract(bytes.NewReader(body))
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.renderLine(c, values)
}

func (s *Server) renderLine(c *gin.Context, values []float64) {
	desc, err := stats.Describe(values)
	if err != nil {
		s.respondError(c, err)
		return
	}
	title := c.Query("title")
	s.render(c, chart.KindLine, func() chart.Figure { return chart.Line(values, desc, title) })
}

// plotHandler decodes and validates a payload of type P, then renders it.
func plotHandler[P models.Payload](s *Server, kind string, newPayload func() P, draw func(P, string) chart.Figure) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := s.readBody(c)
		if err != nil {
			s.respondError(c, err)
			return
		}
		payload := newPayload()
		if err := models.DecodePayload(body, payload); err != nil {
			s.respondError(c, err)
			return
		}
		title := c.Query("title")
		s.render(c, kind, func() chart.Figure { return draw(payload, title) })
	}
}

// render builds and encodes a figure while holding a limiter slot.
func (s *Server) render(c *gin.Context, kind string, build func() chart.Figure) {
	ctx := c.Request.Context()
	if err := s.limiter.Acquire(ctx); err != nil {
		s.respondError(c, errors.Wrap(err, "render slot not acquired"))
		return
	}
	defer s.limiter.Release()

	out, err := s.encoder.Build(kind, build)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", out)
}

func (s *Server) readBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.DecodeError(fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		}
		return nil, errors.DecodeError("failed to read request body")
	}
	return body, nil
}
