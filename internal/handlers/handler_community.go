package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
	"github.com/FarmEase/farmease_backend/internal/dto"
	"github.com/FarmEase/farmease_backend/internal/middleware"
)

// communityHandler handles the discussion board.
type communityHandler struct {
	communityService portssvc.CommunitySvcFacade
}

func newCommunityHandler(cs portssvc.CommunitySvcFacade) *communityHandler {
	return &communityHandler{communityService: cs}
}

// registerCommunityRoutes registers the discussion board routes.
func registerCommunityRoutes(rg *gin.RouterGroup, communityService portssvc.CommunitySvcFacade) {
	h := newCommunityHandler(communityService)

	posts := rg.Group("/community/posts")
	{
		posts.POST("", h.createPost)
		posts.GET("", h.listPosts)
		posts.GET("/:id", h.getPost)
		posts.POST("/:id/replies", h.addReply)
	}
}

// createPost godoc
// @Summary Publish a post
// @Description Creates a new discussion board post by the caller
// @Tags community
// @Accept json
// @Produce json
// @Param post body dto.CreatePostRequest true "Post details"
// @Success 201 {object} dto.CommunityPostResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /community/posts [post]
func (h *communityHandler) createPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	author, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	post, err := h.communityService.CreatePost(c.Request.Context(), author, req)
	if err != nil {
		logger.Warn("Failed to create post", slog.String("author", author), slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to create post")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCommunityPostResponse(post))
}

// listPosts godoc
// @Summary List posts
// @Description Retrieves recent posts, optionally filtered by category
// @Tags community
// @Produce json
// @Param category query string false "Category filter"
// @Param limit query int false "Maximum entries (default 50)"
// @Success 200 {object} dto.ListCommunityPostsResponse
// @Security BearerAuth
// @Router /community/posts [get]
func (h *communityHandler) listPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	posts, err := h.communityService.ListPosts(c.Request.Context(), c.Query("category"), limit)
	if err != nil {
		respondServiceError(c, err, "Failed to list posts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCommunityPostsResponse(posts))
}

// getPost godoc
// @Summary Get a post
// @Description Retrieves a single post with its replies
// @Tags community
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.CommunityPostResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /community/posts/{id} [get]
func (h *communityHandler) getPost(c *gin.Context) {
	post, err := h.communityService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve post")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommunityPostResponse(post))
}

// addReply godoc
// @Summary Reply to a post
// @Description Appends a reply by the caller to an existing post
// @Tags community
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param reply body dto.AddReplyRequest true "Reply content"
// @Success 200 {object} dto.CommunityPostResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /community/posts/{id}/replies [post]
func (h *communityHandler) addReply(c *gin.Context) {
	var req dto.AddReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	author, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	post, err := h.communityService.AddReply(c.Request.Context(), c.Param("id"), author, req.Content)
	if err != nil {
		respondServiceError(c, err, "Failed to add reply")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommunityPostResponse(post))
}
