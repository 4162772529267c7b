package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/orchay/internal/core/domain"
)

type startRequest struct {
	BasePath string `json:"basePath,omitempty"`
}

type startResponse struct {
	Started bool   `json:"started"`
	Root    string `json:"root"`
}

type stopResponse struct {
	Stopped bool `json:"stopped"`
}

type statusResponse struct {
	Watching      bool   `json:"watching"`
	State         string `json:"state"`
	Root          string `json:"root,omitempty"`
	StartedAt     string `json:"startedAt,omitempty"`
	Notifications int64  `json:"notifications"`
}

type basePathResponse struct {
	BasePath string `json:"basePath"`
}

type setBasePathRequest struct {
	Path string `json:"path"`
}

type recentPathsResponse struct {
	Paths []string `json:"paths"`
}

type serverStatusResponse struct {
	UptimeSeconds        int64  `json:"uptimeSeconds"`
	LastActivity         string `json:"lastActivity"`
	IdleRemainingSeconds int64  `json:"idleRemainingSeconds"`
	Subscribers          int    `json:"subscribers"`
	Published            int64  `json:"published"`
	Dropped              int64  `json:"dropped"`
}

func (s *Server) handleWatchStart(w http.ResponseWriter, r *http.Request) *apiError {
	var req startRequest
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		return apiErr
	}

	base := req.BasePath
	if base == "" {
		var err error
		if base, err = s.config.BasePath(); err != nil {
			return errorFor(err)
		}
	}

	root := domain.ProjectsPath(base)
	started := s.session.Start(root)
	if !started {
		root = s.session.Info().Root
	}

	writeJSON(w, http.StatusOK, startResponse{Started: started, Root: root})
	return nil
}

func (s *Server) handleWatchStop(w http.ResponseWriter, _ *http.Request) *apiError {
	writeJSON(w, http.StatusOK, stopResponse{Stopped: s.session.Stop()})
	return nil
}

func (s *Server) handleWatchStatus(w http.ResponseWriter, _ *http.Request) *apiError {
	info := s.session.Info()

	resp := statusResponse{
		Watching:      s.session.Status(),
		State:         info.State.String(),
		Root:          info.Root,
		Notifications: info.Notifications,
	}
	if !info.StartedAt.IsZero() {
		resp.StartedAt = info.StartedAt.UTC().Format(time.RFC3339)
	}

	writeJSON(w, http.StatusOK, resp)
	return nil
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) *apiError {
	base, err := s.config.BasePath()
	if err != nil {
		return errorFor(err)
	}

	items, err := s.projects.List(base, r.URL.Query().Get("status"))
	if err != nil {
		return errorFor(err)
	}

	writeJSON(w, http.StatusOK, items)
	return nil
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) *apiError {
	base, err := s.config.BasePath()
	if err != nil {
		return errorFor(err)
	}

	project, err := s.projects.Get(base, r.PathValue("id"))
	if err != nil {
		return errorFor(err)
	}

	writeJSON(w, http.StatusOK, project)
	return nil
}

func (s *Server) handleGetWBS(w http.ResponseWriter, r *http.Request) *apiError {
	base, err := s.config.BasePath()
	if err != nil {
		return errorFor(err)
	}

	content, rev, err := s.projects.ReadWBS(base, r.PathValue("id"))
	if err != nil {
		return errorFor(err)
	}

	etag := quoteETag(rev)
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return nil
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
	return nil
}

func (s *Server) handlePutWBS(w http.ResponseWriter, r *http.Request) *apiError {
	base, err := s.config.BasePath()
	if err != nil {
		return errorFor(err)
	}

	content, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return &apiError{Status: http.StatusRequestEntityTooLarge, Message: err.Error()}
	}

	rev, err := s.projects.WriteWBS(base, r.PathValue("id"), content, unquoteETag(r.Header.Get("If-Match")))
	if err != nil {
		return errorFor(err)
	}

	w.Header().Set("ETag", quoteETag(rev))
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (s *Server) handleGetBasePath(w http.ResponseWriter, _ *http.Request) *apiError {
	base, err := s.config.BasePath()
	if err != nil {
		return errorFor(err)
	}
	writeJSON(w, http.StatusOK, basePathResponse{BasePath: base})
	return nil
}

func (s *Server) handleSetBasePath(w http.ResponseWriter, r *http.Request) *apiError {
	var req setBasePathRequest
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		return apiErr
	}
	if strings.TrimSpace(req.Path) == "" {
		return badRequest("path is required")
	}

	change, err := s.config.SetBasePath(req.Path)
	if err != nil {
		return errorFor(err)
	}

	writeJSON(w, http.StatusOK, change)
	return nil
}

func (s *Server) handleRecentPaths(w http.ResponseWriter, _ *http.Request) *apiError {
	paths, err := s.config.RecentPaths()
	if err != nil {
		return errorFor(err)
	}
	writeJSON(w, http.StatusOK, recentPathsResponse{Paths: paths})
	return nil
}

func (s *Server) handleInitStatus(w http.ResponseWriter, _ *http.Request) *apiError {
	base, err := s.config.BasePath()
	if err != nil {
		return errorFor(err)
	}

	status, err := s.workspace.Status(base)
	if err != nil {
		return errorFor(err)
	}

	writeJSON(w, http.StatusOK, status)
	return nil
}

func (s *Server) handleInit(w http.ResponseWriter, _ *http.Request) *apiError {
	base, err := s.config.BasePath()
	if err != nil {
		return errorFor(err)
	}

	status, err := s.workspace.Init(base)
	if err != nil {
		return errorFor(err)
	}

	s.logger.Info(fmt.Sprintf("initialized workspace at %s", base))
	writeJSON(w, http.StatusOK, status)
	return nil
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) *apiError {
	base, err := s.config.BasePath()
	if err != nil {
		return errorFor(err)
	}

	doc, err := s.workspace.Settings(base, r.PathValue("type"))
	if err != nil {
		return errorFor(err)
	}

	writeJSON(w, http.StatusOK, doc)
	return nil
}

func (s *Server) handleServerStatus(w http.ResponseWriter, _ *http.Request) *apiError {
	writeJSON(w, http.StatusOK, serverStatusResponse{
		UptimeSeconds:        int64(s.lifecycle.Uptime().Seconds()),
		LastActivity:         s.lifecycle.LastActivity().UTC().Format(time.RFC3339),
		IdleRemainingSeconds: int64(s.lifecycle.IdleRemaining().Seconds()),
		Subscribers:          s.stream.Subscribers(),
		Published:            s.stream.Published(),
		Dropped:              s.stream.Dropped(),
	})
	return nil
}

func (s *Server) handleShutdown(w http.ResponseWriter, _ *http.Request) *apiError {
	writeJSON(w, http.StatusAccepted, stopResponse{Stopped: true})
	s.lifecycle.Shutdown()
	return nil
}

func quoteETag(rev string) string {
	return `"` + rev + `"`
}

func unquoteETag(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "W/")
	return strings.Trim(v, `"`)
}
