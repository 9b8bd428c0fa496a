package controllers

import (
	"net/http"

	"warmindo-pos/storage"

	"github.com/gin-gonic/gin"
)

type FileController struct {
	store *storage.LocalStore
}

func NewFileController(store *storage.LocalStore) *FileController {
	return &FileController{store: store}
}

// ServeBlob serves a stored blob when the request carries a valid,
// unexpired signature issued by the store.
func (fc *FileController) ServeBlob() gin.HandlerFunc {
	return func(c *gin.Context) {
		blobPath := c.Param("path")
		if !fc.store.Verify(blobPath, c.Query("exp"), c.Query("sig")) {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid or expired link"})
			return
		}
		full, err := fc.store.FilePath(blobPath)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid path"})
			return
		}
		c.File(full)
	}
}
