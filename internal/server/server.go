// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server exposes validation over HTTP.
package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/cityjson/cjval"
	"github.com/cityjson/cjval/internal/cache"
	"github.com/cityjson/cjval/internal/driver"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

// Options configures the handler returned by New.
type Options struct {
	MaxBody int64        // request body limit in bytes, zero for none
	Cache   *cache.Cache // nil disables caching
	Version string

	ValidatorOptions []cjval.Option

	// Logger is gin's request logger. nil disables request logging.
	Logger gin.HandlerFunc
}

// ValidateRequest is the body of POST /v1/validate.
type ValidateRequest struct {
	Document   json.RawMessage   `json:"document"`
	Extensions []json.RawMessage `json:"extensions"`
}

// ValidateResponse is the body of a successful POST /v1/validate.
type ValidateResponse struct {
	Valid   bool                `json:"valid"`
	Outcome cjval.Outcome       `json:"outcome"`
	Report  string              `json:"report"`
	Stages  []cjval.StageResult `json:"stages"`
}

// New returns the HTTP handler of the validation service.
func New(opts Options) *gin.Engine {
	r := gin.New()
	if opts.Logger != nil {
		r.Use(opts.Logger)
	}
	r.Use(gin.Recovery())

	h := &handler{opts: opts}
	r.GET("/healthz", h.health)
	v1 := r.Group("/v1")
	v1.GET("/versions", h.versions)
	v1.POST("/validate", h.validate)
	return r
}

type handler struct {
	opts Options
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type versionInfo struct {
	Version string `json:"version"`
	Schema  string `json:"schema"`
}

func (h *handler) versions(c *gin.Context) {
	var out []versionInfo
	for _, v := range cjval.Versions() {
		out = append(out, versionInfo{Version: v.String(), Schema: v.SchemaVersion()})
	}
	c.JSON(http.StatusOK, gin.H{"versions": out})
}

func (h *handler) validate(c *gin.Context) {
	body := c.Request.Body
	if h.opts.MaxBody > 0 {
		body = http.MaxBytesReader(c.Writer, body, h.opts.MaxBody)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req ValidateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if len(req.Document) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": `missing "document"`})
		return
	}
	inputs := []string{string(req.Document)}
	for _, ext := range req.Extensions {
		inputs = append(inputs, string(ext))
	}

	r, err := driver.Run(inputs, h.opts.Cache, h.opts.Version, h.opts.ValidatorOptions...)
	if r.Report == "" && err != nil {
		var ie *cjval.InvalidInputError
		if errors.As(err, &ie) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		_ = c.Error(err)
	}
	c.JSON(http.StatusOK, ValidateResponse{
		Valid:   r.Valid,
		Outcome: r.Outcome,
		Report:  r.Report,
		Stages:  r.Stages,
	})
}
