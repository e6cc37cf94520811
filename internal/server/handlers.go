package server

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/radiolabs/psmareport/internal/form"
	"github.com/radiolabs/psmareport/internal/pipeline"
	"github.com/radiolabs/psmareport/internal/schema"
)

// FieldView is one field as surfaced by the API.
type FieldView struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Section string   `json:"section"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
	Value   any      `json:"value"`
	Enabled bool     `json:"enabled"`
}

// SessionResponse describes one session.
type SessionResponse struct {
	ID      string      `json:"id"`
	Created time.Time   `json:"created"`
	Fields  []FieldView `json:"fields,omitempty"`
	Summary string      `json:"summary,omitempty"`
}

// SchemaField is one field of GET /api/v1/schema.
type SchemaField struct {
	Key        string             `json:"key"`
	Label      string             `json:"label"`
	Section    string             `json:"section"`
	Type       string             `json:"type"`
	Options    []string           `json:"options,omitempty"`
	Dependency *schema.Dependency `json:"dependency,omitempty"`
}

func (s *Server) handleSchema(c echo.Context) error {
	fields := s.reg.Fields()
	out := make([]SchemaField, len(fields))
	for i, f := range fields {
		out[i] = SchemaField{
			Key:        f.Key,
			Label:      f.Label,
			Section:    f.Section,
			Type:       string(f.Type),
			Options:    f.Options,
			Dependency: f.Dependency,
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleCreateSession(c echo.Context) error {
	sess := &session{
		id:      newSessionID(),
		state:   form.New(s.reg),
		created: time.Now().UTC(),
	}
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.Info("session created", zap.String("session", sess.id))
	return c.JSON(http.StatusCreated, SessionResponse{ID: sess.id, Created: sess.created})
}

func (s *Server) handleListSessions(c echo.Context) error {
	s.mu.RLock()
	out := make([]SessionResponse, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, SessionResponse{ID: sess.id, Created: sess.created})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Created.Before(out[j].Created) })
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetSession(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	values := sess.state.Values()
	fields := s.reg.Fields()
	views := make([]FieldView, len(fields))
	for i, f := range fields {
		enabled, _ := sess.state.IsEnabled(f.Key)
		views[i] = FieldView{
			Key:     f.Key,
			Label:   f.Label,
			Section: f.Section,
			Type:    string(f.Type),
			Options: f.Options,
			Value:   values[f.Key],
			Enabled: enabled,
		}
	}
	return c.JSON(http.StatusOK, SessionResponse{
		ID:      sess.id,
		Created: sess.created,
		Fields:  views,
		Summary: sess.state.Summary(),
	})
}

func (s *Server) handleDeleteSession(c echo.Context) error {
	id := c.Param("id")
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("session %s not found", id))
	}
	return c.NoContent(http.StatusNoContent)
}

// PatchFieldRequest is the body of PATCH .../fields/:key.
type PatchFieldRequest struct {
	Value any `json:"value"`
}

func (s *Server) handlePatchField(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}
	key, err := s.reg.Resolve(c.Param("key"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	var req PatchFieldRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	def, err := s.reg.Field(key)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	value, err := valueFromJSON(def, req.Value)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := sess.state.Set(key, value); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"key":     key,
		"value":   value,
		"summary": sess.state.Summary(),
	})
}

// ExtractRequest is the body of POST .../extract.
type ExtractRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleExtract(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	var req ExtractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text field is required")
	}

	sess.runMu.Lock()
	defer sess.runMu.Unlock()

	res, err := s.runner.Run(c.Request().Context(), req.Text, sess.state)
	if err != nil {
		if errors.Is(err, pipeline.ErrEmptyInput) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		s.logger.Error("extraction run failed", zap.String("session", sess.id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "extraction failed")
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) handleExport(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	format := c.QueryParam("format")
	if format == "" {
		format = "json"
	}
	switch format {
	case "json":
		doc, err := sess.state.ExportJSON()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, doc)
	case "text":
		return c.String(http.StatusOK, sess.state.ExportText())
	case "summary":
		return c.String(http.StatusOK, sess.state.Summary())
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown export format %q", format))
	}
}
