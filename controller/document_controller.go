package controller

import (
	"log"
	"net/http"

	service "github.com/centralkang-byte/ctr-hr-hub-sub002/service"
	"github.com/gin-gonic/gin"
)

// DocumentController manages uploads of contract and work-permit files.
type DocumentController struct {
	service *service.DocumentService
}

func NewDocumentController(service *service.DocumentService) *DocumentController {
	return &DocumentController{service}
}

// UploadContractDocument handles POST /contracts/:id/document.
func (c *DocumentController) UploadContractDocument(ctx *gin.Context) {
	contractID := ctx.Param("id")
	if contractID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Contract ID required"})
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to get file from request"})
		return
	}
	defer file.Close()

	fileURL, err := c.service.AttachContractDocument(contractID, file, header)
	if err != nil {
		log.Printf("[UploadContractDocument] Error storing document: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Contract document uploaded successfully",
		"fileURL": fileURL,
	})
}

// UploadWorkPermitDocument handles POST /work-permits/:id/document.
func (c *DocumentController) UploadWorkPermitDocument(ctx *gin.Context) {
	permitID := ctx.Param("id")
	if permitID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Work permit ID required"})
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to get file from request"})
		return
	}
	defer file.Close()

	fileURL, err := c.service.AttachWorkPermitDocument(permitID, file, header)
	if err != nil {
		log.Printf("[UploadWorkPermitDocument] Error storing document: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Work permit document uploaded successfully",
		"fileURL": fileURL,
	})
}
