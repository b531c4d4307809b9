package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VocabularyFile must exist in the web root
const VocabularyFile = "vocabulary_persian_final.json"

// PageFiles make up the page; missing ones only degrade it
var PageFiles = []string{"index.html", "styles.css", "script.js", "manifest.json"}

// ErrVocabularyMissing is returned by CheckRoot when the word list is absent
var ErrVocabularyMissing = errors.New("vocabulary file not found")

// CheckRoot verifies the web root before serving.
// It returns the page files that are missing.
func CheckRoot(root string) ([]string, error) {
	if _, err := os.Stat(filepath.Join(root, VocabularyFile)); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrVocabularyMissing, filepath.Join(root, VocabularyFile))
	}

	var missing []string
	for _, name := range PageFiles {
		if _, err := os.Stat(filepath.Join(root, name)); err != nil {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

// CORSMiddleware lets pages on other origins load the assets
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggerMiddleware logs each request with zap
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("Request served",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// NewRouter serves the web root as static files
func NewRouter(root string, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(LoggerMiddleware(logger))
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.NoRoute(ServeRoot(root))

	return router
}

// ServeRoot serves files from root, mapping "/" to index.html.
// Directories are not listed and index.html is served in place, not redirected.
func ServeRoot(root string) gin.HandlerFunc {
	dir := http.Dir(root)
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.AbortWithStatus(http.StatusMethodNotAllowed)
			return
		}

		name := path.Clean("/" + c.Request.URL.Path)
		if name == "/" {
			name = "/index.html"
		}

		f, err := dir.Open(name)
		if err != nil {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || info.IsDir() {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	}
}
