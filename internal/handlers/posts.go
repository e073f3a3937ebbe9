package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/service"
)

type createPostRequest struct {
	Text string `json:"text" binding:"required"`
	// Defaults to true when omitted: posts are anonymous unless the caller
	// opts out.
	Anonymous *bool `json:"anonymous"`
}

type updatePostRequest struct {
	Text      *string `json:"text"`
	Anonymous *bool   `json:"anonymous"`
}

// @Summary      Create a post
// @Description  Text is annotated with sentiment, toxicity and tags; toxic posts are rejected.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body  createPostRequest  true  "Post payload"
// @Success      201  {object}  map[string]string  "id"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /posts [post]
// @Security     BearerAuth
func (h *Handler) createPost(c *gin.Context) {
	var input createPostRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	anonymous := true
	if input.Anonymous != nil {
		anonymous = *input.Anonymous
	}

	id, err := h.services.Posts.Create(c.Request.Context(), identityFrom(c), input.Text, anonymous)
	if err != nil {
		h.respondServiceError(c, err, "post_create_failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      Public feed
// @Description  Latest 100 posts, newest first. Anonymous posts hide their author; "owned" marks the viewer's own posts.
// @Tags         posts
// @Produce      json
// @Success      200  {array}  models.FeedItem
// @Router       /posts [get]
func (h *Handler) feed(c *gin.Context) {
	items, err := h.services.Posts.Feed(c.Request.Context(), identityFrom(c))
	if err != nil {
		h.respondServiceError(c, err, "feed_list_failed")
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary      Own posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  models.MyPost
// @Failure      401  {object}  map[string]string
// @Router       /my-posts [get]
// @Security     BearerAuth
func (h *Handler) myPosts(c *gin.Context) {
	posts, err := h.services.Posts.Mine(c.Request.Context(), identityFrom(c).UserID)
	if err != nil {
		h.respondServiceError(c, err, "my_posts_failed")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// @Summary      Update own post
// @Description  Partial update; new text is re-validated and re-annotated. A toxic replacement rejects the whole update.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Post ID"
// @Param        body  body  updatePostRequest  true  "Fields to change"
// @Success      200  {object}  map[string]bool  "success"
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
// @Security     BearerAuth
func (h *Handler) updatePost(c *gin.Context) {
	var input updatePostRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.Posts.Update(c.Request.Context(), identityFrom(c).UserID, c.Param("id"), service.PostUpdate{
		Text:      input.Text,
		Anonymous: input.Anonymous,
	})
	if err != nil {
		h.respondServiceError(c, err, "post_update_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary      Delete own post
// @Tags         posts
// @Produce      json
// @Param        id  path  string  true  "Post ID"
// @Success      200  {object}  map[string]bool  "success"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deletePost(c *gin.Context) {
	err := h.services.Posts.Delete(c.Request.Context(), identityFrom(c).UserID, c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "post_delete_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
