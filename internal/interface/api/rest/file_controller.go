package rest

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-manager-api/internal/application/ports"
	"file-manager-api/internal/application/services"
	domain "file-manager-api/internal/domain/file"
	"file-manager-api/internal/interface/api/rest/dto/file"
	"file-manager-api/internal/interface/api/rest/middleware"
	"file-manager-api/internal/interface/api/rest/validator"
)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	sessions ports.SessionStore,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	auth := middleware.AuthMiddleware(sessions)

	r.POST(RouteFiles, auth, fc.CreateFileHandler)
	r.GET(RouteFiles, auth, fc.GetFilesHandler)
	r.GET(RouteFile, auth, fc.GetFileHandler)
	r.PUT(RouteFilePublish, auth, fc.PublishHandler)
	r.PUT(RouteFileUnpublish, auth, fc.UnpublishHandler)

	// content read has a public path for published records
	r.GET(RouteFileData, middleware.Identify(sessions), fc.GetFileDataHandler)

	return fc
}

func (fc *FileController) CreateFileHandler(c *gin.Context) {
	ownerID := middleware.RequesterID(c)

	var req file.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	parentID, ok := validator.ParseParentID(req.ParentID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrParentNotFound.Error()})
		return
	}

	var data []byte
	if req.Data != "" {
		var err error
		data, err = base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "data must be base64-encoded"})
			return
		}
	}

	f, err := fc.fileService.CreateFile(
		c.Request.Context(),
		ownerID,
		req.Name,
		domain.Kind(req.Type),
		parentID,
		req.IsPublic,
		data,
	)
	if err != nil {
		fc.writeFileError(c, "CreateFile", err)
		return
	}

	c.JSON(http.StatusCreated, file.ToResponseFile(*f))
}

func (fc *FileController) GetFilesHandler(c *gin.Context) {
	ownerID := middleware.RequesterID(c)
	page := validator.ValidatePage(c.Query("page"))

	parentID, ok := validator.ParseParentID(c.Query("parentId"))
	if !ok {
		// an unparseable parent filter matches nothing
		c.JSON(http.StatusOK, file.ResponseData{Data: file.Files{}})
		return
	}

	fls, err := fc.fileService.FindFiles(c.Request.Context(), ownerID, parentID, page)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("FindFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, file.ResponseData{
		Data: file.ToResponseFiles(fls),
	})
}

func (fc *FileController) GetFileHandler(c *gin.Context) {
	requesterID := middleware.RequesterID(c)

	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrNotFound.Error()})
		return
	}

	f, err := fc.fileService.FindFile(c.Request.Context(), requesterID, fileID)
	if err != nil {
		fc.writeFileError(c, "FindFile", err)
		return
	}

	c.JSON(http.StatusOK, file.ToResponseFile(*f))
}

func (fc *FileController) PublishHandler(c *gin.Context)   { fc.setVisibility(c, true) }
func (fc *FileController) UnpublishHandler(c *gin.Context) { fc.setVisibility(c, false) }

func (fc *FileController) setVisibility(c *gin.Context, isPublic bool) {
	requesterID := middleware.RequesterID(c)

	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrNotFound.Error()})
		return
	}

	f, err := fc.fileService.SetVisibility(c.Request.Context(), requesterID, fileID, isPublic)
	if err != nil {
		fc.writeFileError(c, "SetVisibility", err)
		return
	}

	c.JSON(http.StatusOK, file.ToResponseFile(*f))
}

func (fc *FileController) GetFileDataHandler(c *gin.Context) {
	requesterID := middleware.RequesterID(c)

	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrNotFound.Error()})
		return
	}

	width := validator.ValidateSize(c.Query("size"))

	data, mimeType, err := fc.fileService.ReadContent(c.Request.Context(), requesterID, fileID, width)
	if err != nil {
		fc.writeFileError(c, "ReadContent", err)
		return
	}

	c.Data(http.StatusOK, mimeType, data)
}

// writeFileError maps service errors onto the wire contract: validation
// and parent failures are 400, not-found (which deliberately includes
// denied access) is 404, the rest is 500.
func (fc *FileController) writeFileError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, services.ErrMissingName),
		errors.Is(err, services.ErrMissingType),
		errors.Is(err, services.ErrMissingData),
		errors.Is(err, services.ErrParentNotFound),
		errors.Is(err, services.ErrParentNotFolder),
		errors.Is(err, services.ErrFolderHasNoContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to process file"},
		)
		fc.logger.Error(op+"() error", zap.Error(err))
	}
}
