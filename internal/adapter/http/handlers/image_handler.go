package handlers

import (
	"net/http"

	response "joalheria_xpto/internal/adapter/http/dto/response"
	"joalheria_xpto/internal/usecase/interfaces"
	"joalheria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingImageFile = pkg.NewDomainErrorSimple("MISSING_IMAGE_FILE", "Missing image file", http.StatusBadRequest)
	errImageUploadFail  = "IMAGE_UPLOAD_FAILED"
)

// ImageHandler uploads product images and returns the opaque URL that an
// estimate may later reference.

type ImageHandler struct {
	storage interfaces.IImageStorage
}

func NewImageHandler(storage interfaces.IImageStorage) *ImageHandler {
	return &ImageHandler{storage: storage}
}

// UploadImage accepts a multipart "file" field and returns the stored URL.
//
// @Summary  Upload a product image
// @Tags     images
// @Accept   mpfd
// @Produce  json
// @Param    file formData file true "image file"
// @Success  201 {object} response.ImageUploadResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /images [post]
func (h *ImageHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingImageFile.HTTPStatus, errMissingImageFile.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError(errImageUploadFail, "Could not read uploaded file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	url, err := h.storage.Upload(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		appErr := pkg.NewDomainError(errImageUploadFail, "Image upload failed", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.ImageUploadResponse{URL: url})
}
