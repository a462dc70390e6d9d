package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/importer"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/media"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/models"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/repository"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/visibility"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

type Handler struct {
	catalog  *repository.Catalog
	importer *importer.Importer
	log      logger.Logger
}

func NewHandler(catalog *repository.Catalog, imp *importer.Importer, log logger.Logger) *Handler {
	return &Handler{catalog: catalog, importer: imp, log: log}
}

func (h *Handler) resource(c *gin.Context) (repository.Resource, bool) {
	res, err := h.catalog.Resource(c.Param("resource"))
	if err != nil {
		h.fail(c, "resource", err)
		return nil, false
	}
	return res, true
}

func (h *Handler) site(c *gin.Context, raw string) (models.SiteID, bool) {
	if raw == "" {
		return models.SiteAll, true
	}
	site, err := models.ParseSite(raw)
	if err != nil {
		h.fail(c, "site", err)
		return "", false
	}
	return site, true
}

func respondList(c *gin.Context, items []any) {
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// SiteList serves the published items visible on one site.
func (h *Handler) SiteList(c *gin.Context) {
	site, ok := h.site(c, c.Param("site"))
	if !ok {
		return
	}
	res, ok := h.resource(c)
	if !ok {
		return
	}
	items, err := res.ListItems(c.Request.Context(), repository.ListOptions{Site: site})
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	respondList(c, items)
}

func (h *Handler) SiteGet(c *gin.Context) {
	site, ok := h.site(c, c.Param("site"))
	if !ok {
		return
	}
	res, ok := h.resource(c)
	if !ok {
		return
	}
	item, err := res.GetVisibleItem(c.Request.Context(), c.Param("id"), site, visibility.Options{})
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// PropertyMedia serves the unified gallery of a listing visible on the site.
func (h *Handler) PropertyMedia(c *gin.Context) {
	site, ok := h.site(c, c.Param("site"))
	if !ok {
		return
	}
	if c.Param("resource") != repository.ResourceProperties {
		h.fail(c, "media", models.ErrUnknownResource)
		return
	}
	p, err := h.catalog.Properties.GetVisible(c.Request.Context(), c.Param("id"), site, visibility.Options{})
	if err != nil {
		h.fail(c, "media", err)
		return
	}
	items := media.BuildMediaItems(&p)
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// AdminList includes drafts. An optional ?source= narrows to one site.
func (h *Handler) AdminList(c *gin.Context) {
	site, ok := h.site(c, c.Query("source"))
	if !ok {
		return
	}
	res, ok := h.resource(c)
	if !ok {
		return
	}
	items, err := res.ListItems(c.Request.Context(), repository.ListOptions{Site: site, IncludeDrafts: true})
	if err != nil {
		h.fail(c, "admin list", err)
		return
	}
	respondList(c, items)
}

func (h *Handler) AdminGet(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	item, err := res.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "admin get", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) bindInput(c *gin.Context) (map[string]any, bool) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Debug("Invalid request body", logger.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return nil, false
	}
	return input, true
}

func (h *Handler) AdminCreate(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	input, ok := h.bindInput(c)
	if !ok {
		return
	}
	item, err := res.CreateItem(c.Request.Context(), input)
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	h.log.Info("Content created", logger.String("resource", res.Name()))
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) AdminUpdate(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	input, ok := h.bindInput(c)
	if !ok {
		return
	}
	id := c.Param("id")
	item, err := res.UpdateItem(c.Request.Context(), id, input)
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	h.log.Info("Content updated",
		logger.String("resource", res.Name()),
		logger.String("id", id),
	)
	c.JSON(http.StatusOK, item)
}

func (h *Handler) AdminDelete(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := res.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", err)
		return
	}
	h.log.Info("Content deleted",
		logger.String("resource", res.Name()),
		logger.String("id", id),
	)
	c.Status(http.StatusNoContent)
}

// Upload forwards the multipart "file" field to the upload collaborator.
func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable file"})
		return
	}
	defer func() { _ = file.Close() }()

	link, err := h.catalog.Upload(c.Request.Context(), c.Param("bucket"), header.Filename, file)
	if err != nil {
		h.fail(c, "upload", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": link})
}

// Import loads a listings workbook posted as the multipart "file" field.
func (h *Handler) Import(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable file"})
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.importer.Import(c.Request.Context(), file)
	if err != nil {
		h.fail(c, "import", err)
		return
	}
	status := http.StatusOK
	if len(result.Created) > 0 {
		status = http.StatusCreated
	}
	c.Header("X-Import-Created", strconv.Itoa(len(result.Created)))
	c.JSON(status, result)
}

func (h *Handler) Contact(c *gin.Context) {
	var msg models.ContactSubmission
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	receipt, err := h.catalog.Forms.SubmitContact(c.Request.Context(), msg)
	if err != nil {
		h.fail(c, "contact", err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

func (h *Handler) Newsletter(c *gin.Context) {
	var sub models.Subscription
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	receipt, err := h.catalog.Forms.Subscribe(c.Request.Context(), sub)
	if err != nil {
		h.fail(c, "newsletter", err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.catalog.Forms.Dashboard(c.Request.Context())
	if err != nil {
		h.fail(c, "dashboard", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
