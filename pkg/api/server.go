// Package api exposes a localhost admin surface for managing stored
// credentials: store, probe, and delete by target, and clearing the
// instance cache. It never returns password material; the prompt session
// itself has no network surface.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eliziario/credkeeper/internal/codec"
	"github.com/eliziario/credkeeper/internal/config"
	"github.com/eliziario/credkeeper/internal/credentials"
	"github.com/eliziario/credkeeper/internal/keystore"
)

type Server struct {
	config *config.Config
	store  keystore.Store
	cache  *credentials.Cache
	codec  *codec.Codec
	logger *logrus.Logger
	engine *gin.Engine
}

type storeCredentialRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewServer(cfg *config.Config, store keystore.Store, cache *credentials.Cache, cdc *codec.Codec, logger *logrus.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		config: cfg,
		store:  store,
		cache:  cache,
		codec:  cdc,
		logger: logger,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery())

	base := s.engine.Group(cfg.Settings.Server.Path)
	base.GET("/health", s.handleHealth)
	base.GET("/targets", s.handleListTargets)
	base.PUT("/credentials/:target", s.handleStoreCredential)
	base.GET("/credentials/:target", s.handleProbeCredential)
	base.DELETE("/credentials/:target", s.handleDeleteCredential)
	base.POST("/cache/clear", s.handleClearCache)

	return s
}

func (s *Server) Run() error {
	addr := s.config.Settings.Server.Address
	s.logger.WithField("address", addr).Info("Starting admin API")
	return s.engine.Run(addr)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleListTargets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"targets": s.config.ListTargets(),
		"count":   len(s.config.Targets),
	})
}

func (s *Server) handleStoreCredential(c *gin.Context) {
	target := c.Param("target")

	var req storeCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	secret, err := s.codec.Encrypt(req.Password)
	if err != nil {
		s.logger.WithField("target", target).WithError(err).Error("Failed to protect credential")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to protect credential"})
		return
	}

	if err := s.store.Write(target, req.Username, secret); err != nil {
		s.logger.WithField("target", target).WithError(err).Error("Failed to store credential")
		c.JSON(http.StatusBadGateway, gin.H{"error": "credential store write failed"})
		return
	}

	s.logger.WithFields(logrus.Fields{
		"target":   target,
		"username": req.Username,
	}).Info("Credential stored")
	c.JSON(http.StatusOK, gin.H{"target": target, "username": req.Username})
}

// handleProbeCredential reports whether a usable record exists for the
// target. The password never leaves the server.
func (s *Server) handleProbeCredential(c *gin.Context) {
	target := c.Param("target")

	rec, err := s.store.Read(target)
	if err != nil {
		if errors.Is(err, keystore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"target": target, "found": false})
			return
		}
		s.logger.WithField("target", target).WithError(err).Error("Failed to read credential")
		c.JSON(http.StatusBadGateway, gin.H{"error": "credential store read failed"})
		return
	}

	_, decodeErr := s.codec.Decrypt(rec.Secret)
	c.JSON(http.StatusOK, gin.H{
		"target":    target,
		"found":     true,
		"username":  rec.Username,
		"decodable": decodeErr == nil,
	})
}

func (s *Server) handleDeleteCredential(c *gin.Context) {
	target := c.Param("target")

	removed := false
	if s.cache != nil {
		removed = s.cache.Remove(target)
	}

	existed, err := s.store.Delete(target)
	if err != nil {
		s.logger.WithField("target", target).WithError(err).Error("Failed to delete credential")
		c.JSON(http.StatusBadGateway, gin.H{"error": "credential store delete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"target": target, "deleted": removed || existed})
}

func (s *Server) handleClearCache(c *gin.Context) {
	if s.cache != nil {
		s.cache.Clear()
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
