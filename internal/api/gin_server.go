package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"translate-relay/internal/mimetype"
	"translate-relay/internal/services"
	"translate-relay/internal/third_party/deepl"
	"translate-relay/pkg/types"
)

type GinServer struct {
	router   *gin.Engine
	logger   *zap.Logger
	services *services.Services
}

func NewGinServer(logger *zap.Logger, services *services.Services) *GinServer {
	router := gin.Default()
	router.Use(GinLogger(logger))

	// browser clients need Content-Disposition exposed to read the
	// download filename
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST"},
		AllowHeaders:    []string{"Content-Type"},
		ExposeHeaders:   []string{"Content-Disposition"},
	}))

	server := &GinServer{
		router:   router,
		logger:   logger,
		services: services,
	}
	server.SetupRoutes()
	return server
}

// GetRouter returns the Gin router
func (s *GinServer) GetRouter() *gin.Engine {
	return s.router
}

func (s *GinServer) SetupRoutes() {
	s.router.GET("/", s.Liveness)
	s.router.POST("/translate", s.Translate)
	s.router.POST("/translate-document", s.TranslateDocument)
	s.router.POST("/get-document-status", s.GetDocumentStatus)
	s.router.POST("/download-document", s.DownloadDocument)
}

// GinLogger returns a gin middleware for logging using zap
func GinLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// Liveness reports that the relay is up
func (s *GinServer) Liveness(c *gin.Context) {
	c.String(http.StatusOK, "Translation relay is running")
}

// Translate handles plain-text translation requests
func (s *GinServer) Translate(c *gin.Context) {
	var req types.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text and target_lang are required"})
		return
	}

	translated, err := s.services.TextTranslatorService.Translate(c.Request.Context(), req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		s.logger.Error("translation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Translation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"translatedText": translated})
}

// TranslateDocument accepts a multipart upload and forwards it to the
// provider, returning the job handle
func (s *GinServer) TranslateDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	targetLang := c.PostForm("targetLang")

	file, err := fileHeader.Open()
	if err != nil {
		s.logger.Error("failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Document translation failed"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("failed to read uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Document translation failed"})
		return
	}

	handle, err := s.services.DocumentTranslatorService.Upload(c.Request.Context(), fileHeader.Filename, data, targetLang)
	if err != nil {
		s.logger.Error("document upload failed", zap.Error(err))
		var apiErr *deepl.APIError
		if errors.As(err, &apiErr) && apiErr.Detail != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload document", "details": apiErr.Detail})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"document_id":  handle.DocumentID,
		"document_key": handle.DocumentKey,
	})
}

// GetDocumentStatus relays the provider's job status verbatim
func (s *GinServer) GetDocumentStatus(c *gin.Context) {
	var req types.DocumentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document_id and document_key are required"})
		return
	}

	handle := types.DocumentHandle{DocumentID: req.DocumentID, DocumentKey: req.DocumentKey}
	payload, err := s.services.DocumentTranslatorService.Status(c.Request.Context(), handle)
	if err != nil {
		s.logger.Error("document status failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get document status"})
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}

// DownloadDocument retrieves the translated document into a temp file and
// streams it back, removing the file on every exit path
func (s *GinServer) DownloadDocument(c *gin.Context) {
	var req types.DocumentDownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document_id, document_key and outputFileName are required"})
		return
	}

	handle := types.DocumentHandle{DocumentID: req.DocumentID, DocumentKey: req.DocumentKey}
	tmpPath, err := s.services.DocumentTranslatorService.Download(c.Request.Context(), handle, req.OutputFileName)
	if err != nil {
		s.logger.Error("document download failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to download document"})
		return
	}

	// the temp file exists from here on; exactly one removal per request
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			s.logger.Warn("failed to remove temp file", zap.String("temp_path", tmpPath), zap.Error(err))
		}
	}()

	file, err := os.Open(tmpPath)
	if err != nil {
		s.logger.Error("failed to open temp file", zap.String("temp_path", tmpPath), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming failed"})
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		s.logger.Error("failed to stat temp file", zap.String("temp_path", tmpPath), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming failed"})
		return
	}

	c.Writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", req.OutputFileName))
	c.Writer.Header().Set("Content-Type", mimetype.ForFilename(req.OutputFileName))
	c.Writer.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	c.Writer.WriteHeader(http.StatusOK)

	if _, err := io.Copy(c.Writer, file); err != nil {
		// headers are out once the first chunk is written; all that is
		// left is to drop the connection and clean up
		s.logger.Error("document stream interrupted", zap.String("temp_path", tmpPath), zap.Error(err))
		c.Abort()
		return
	}
}
