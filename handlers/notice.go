package handlers

import (
	"io"
	"net/http"

	"github.com/Omoefe-bazunu/hhaven/middleware"
	"github.com/Omoefe-bazunu/hhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListNoticesHandler handles GET /api/notices.
func (h *HandlerBundle) ListNoticesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.NoticeSvc.ListNotices(c.Request.Context()))
}

// MarkNoticeReadHandler handles POST /api/notices/:id/read. The upsert is
// idempotent; marking an already-read notice succeeds again. Guests get a
// 204 without any write.
func (h *HandlerBundle) MarkNoticeReadHandler(c *gin.Context) {
	noticeID := c.Param("id")
	userID := middleware.UserID(c)

	err := h.NoticeSvc.MarkAsRead(c.Request.Context(), userID, noticeID)
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	if ve, ok := utils.AsValidationError(err); ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid read receipt", ve.Error())
		return
	}
	if we, ok := utils.AsWriteError(err); ok {
		h.Logger.Error("MarkNoticeRead: write rejected",
			zap.String("noticeID", noticeID), zap.Error(err))
		switch we.Category {
		case utils.WriteErrorPermission:
			utils.JSONError(c, http.StatusForbidden, "not allowed to mark this notice", noticeID)
		case utils.WriteErrorQuota:
			utils.JSONError(c, http.StatusTooManyRequests, "read receipt limit reached, try again later", noticeID)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to mark notice as read", noticeID)
		}
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "failed to mark notice as read", noticeID)
}

// ReadNoticesHandler handles GET /api/notices/read: the caller's read-receipt
// notice IDs. Guests always get an empty list.
func (h *HandlerBundle) ReadNoticesHandler(c *gin.Context) {
	userID := middleware.UserID(c)
	c.JSON(http.StatusOK, gin.H{"readNoticeIds": h.NoticeSvc.ReadNoticeIDs(c.Request.Context(), userID)})
}

// UnreadCountHandler handles GET /api/notices/unread: a one-shot unread count.
func (h *HandlerBundle) UnreadCountHandler(c *gin.Context) {
	userID := middleware.UserID(c)
	c.JSON(http.StatusOK, gin.H{"unreadCount": h.NoticeSvc.UnreadCount(c.Request.Context(), userID)})
}

// StreamUnreadHandler handles GET /api/notices/unread/stream. It holds the
// connection open and pushes the unread count as a server-sent event whenever
// the notice stream or the caller's read receipts change.
func (h *HandlerBundle) StreamUnreadHandler(c *gin.Context) {
	userID := middleware.UserID(c)

	counts := make(chan int, 8)
	stop := h.NoticeSvc.TrackUnread(userID, func(n int) {
		select {
		case counts <- n:
		default:
			// Client is not keeping up; skip intermediate counts. The next
			// emission carries the current total anyway.
		}
	})
	defer stop()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case n := <-counts:
			c.SSEvent("unread", gin.H{"unreadCount": n})
			return true
		case <-clientGone:
			return false
		}
	})
}
