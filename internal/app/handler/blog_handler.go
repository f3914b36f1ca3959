package handler

import (
	"io"
	"net/http"

	"adagency/internal/app/ds"
	"adagency/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// maxCoverSize caps blog cover uploads at 5 MB.
const maxCoverSize = 5 << 20

// ============ Blogs ============

// ListBlogs returns published blog posts
// @Summary List blogs
// @Tags Blogs
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /api/blogs [get]
func (h *APIHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.Repository.ListBlogs(c.Request.Context())
	if err != nil {
		logrus.Error("Error listing blogs: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to list blogs")
		return
	}

	resp := make([]dto.BlogResponse, 0, len(blogs))
	for i := range blogs {
		resp = append(resp, h.blogToDTO(c, &blogs[i]))
	}
	h.successResponse(c, http.StatusOK, "", resp)
}

// GetBlog returns one blog post by ID or slug
// @Summary Get blog
// @Tags Blogs
// @Produce json
// @Param id path string true "Blog ID or slug"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/blogs/{id} [get]
func (h *APIHandler) GetBlog(c *gin.Context) {
	var blog *ds.Blog

	if id, err := parseIDParam(c); err == nil {
		blog, err = h.Repository.GetBlogByID(c.Request.Context(), id)
		if err != nil {
			h.errorResponse(c, http.StatusNotFound, "blog not found")
			return
		}
	} else {
		blog, err = h.Repository.GetBlogBySlug(c.Request.Context(), c.Param("id"))
		if err != nil {
			h.errorResponse(c, http.StatusNotFound, "blog not found")
			return
		}
	}

	h.successResponse(c, http.StatusOK, "", h.blogToDTO(c, blog))
}

// CreateBlog adds a blog post
// @Summary Create blog
// @Tags Blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BlogRequest true "Blog data"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /api/blogs [post]
func (h *APIHandler) CreateBlog(c *gin.Context) {
	var req dto.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	blog := &ds.Blog{
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
		Author:  req.Author,
	}
	if err := h.Repository.CreateBlog(c.Request.Context(), blog); err != nil {
		logrus.Error("Error creating blog: ", err)
		h.errorResponse(c, http.StatusBadRequest, "failed to create blog, slug may already exist")
		return
	}

	h.successResponse(c, http.StatusCreated, "blog created", h.blogToDTO(c, blog))
}

// UpdateBlog updates a blog post
// @Summary Update blog
// @Tags Blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Param request body dto.BlogRequest true "Blog data"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/blogs/{id} [put]
func (h *APIHandler) UpdateBlog(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Repository.GetBlogByID(c.Request.Context(), id); err != nil {
		h.errorResponse(c, http.StatusNotFound, "blog not found")
		return
	}

	updates := map[string]interface{}{
		"title":   req.Title,
		"slug":    req.Slug,
		"content": req.Content,
		"author":  req.Author,
	}
	if err := h.Repository.UpdateBlog(c.Request.Context(), id, updates); err != nil {
		logrus.Error("Error updating blog: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to update blog")
		return
	}

	h.successResponse(c, http.StatusOK, "blog updated", nil)
}

// DeleteBlog removes a blog post and its cover image
// @Summary Delete blog
// @Tags Blogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.APIResponse
// @Router /api/blogs/{id} [delete]
func (h *APIHandler) DeleteBlog(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := h.Repository.GetBlogByID(c.Request.Context(), id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "blog not found")
		return
	}

	if err := h.Repository.DeleteBlog(c.Request.Context(), id); err != nil {
		logrus.Error("Error deleting blog: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to delete blog")
		return
	}

	if blog.CoverImage != "" && h.Media != nil {
		if err := h.Media.Delete(c.Request.Context(), blog.CoverImage); err != nil {
			logrus.Warn("Error deleting blog cover from storage: ", err)
		}
	}

	h.successResponse(c, http.StatusOK, "blog deleted", nil)
}

// UploadBlogCover stores a cover image in MinIO and links it to the blog
// @Summary Upload blog cover
// @Tags Blogs
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Param image formData file true "Cover image"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /api/blogs/{id}/image [post]
func (h *APIHandler) UploadBlogCover(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := h.Repository.GetBlogByID(c.Request.Context(), id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "blog not found")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "image file is required")
		return
	}
	if fileHeader.Size > maxCoverSize {
		h.errorResponse(c, http.StatusBadRequest, "image exceeds the 5MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}

	objectName, err := h.Media.Upload(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		logrus.Error("Error uploading blog cover: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to store image")
		return
	}

	// Replace, then drop the previous cover so the bucket does not collect
	// orphans.
	old := blog.CoverImage
	if err := h.Repository.UpdateBlogCover(c.Request.Context(), id, objectName); err != nil {
		logrus.Error("Error linking blog cover: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to link image to blog")
		return
	}
	if old != "" {
		if err := h.Media.Delete(c.Request.Context(), old); err != nil {
			logrus.Warn("Error deleting previous blog cover: ", err)
		}
	}

	url, err := h.Media.PresignedURL(c.Request.Context(), objectName)
	if err != nil {
		logrus.Warn("Error presigning blog cover URL: ", err)
	}

	h.successResponse(c, http.StatusOK, "cover image uploaded", gin.H{
		"coverImage": objectName,
		"coverUrl":   url,
	})
}

func (h *APIHandler) blogToDTO(c *gin.Context, blog *ds.Blog) dto.BlogResponse {
	resp := dto.BlogResponse{
		ID:         blog.ID,
		Title:      blog.Title,
		Slug:       blog.Slug,
		Content:    blog.Content,
		Author:     blog.Author,
		CoverImage: blog.CoverImage,
		CreatedAt:  blog.CreatedAt,
	}
	if blog.CoverImage != "" && h.Media != nil {
		if url, err := h.Media.PresignedURL(c.Request.Context(), blog.CoverImage); err == nil {
			resp.CoverURL = url
		}
	}
	return resp
}
