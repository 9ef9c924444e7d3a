package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/Paths06/TalentNetwork/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkspaceSession binds a browser session to one workspace. There is no login;
// the session exists only to keep each visitor's data isolated.
type WorkspaceSession struct {
	WorkspaceID string    `json:"workspace_id"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// SessionMiddleware assigns every request a workspace session, minting a new
// one when the cookie is missing, tampered with, or expired.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := getSessionFromCookie(c)
		if session == nil {
			session = &WorkspaceSession{
				WorkspaceID: uuid.New().String(),
				ExpiresAt:   time.Now().Add(24 * time.Hour),
			}
		}

		// Re-issue the cookie so active sessions keep their workspace
		if err := setSessionCookie(c, session); err == nil {
			c.Set("session", session)
		}

		c.Next()
	}
}

// GetWorkspaceID returns the workspace ID bound to this request
func GetWorkspaceID(c *gin.Context) string {
	session, exists := c.Get("session")
	if !exists {
		return ""
	}

	if ws, ok := session.(*WorkspaceSession); ok {
		return ws.WorkspaceID
	}
	return ""
}

// getSessionFromCookie extracts and validates session data from the cookie
func getSessionFromCookie(c *gin.Context) *WorkspaceSession {
	cookie, err := c.Cookie("session")
	if err != nil {
		return nil
	}

	// Split cookie value (signature.data)
	parts := strings.Split(cookie, ".")
	if len(parts) != 2 {
		return nil
	}

	signature, data := parts[0], parts[1]

	if !verifySignature(data, signature) {
		return nil
	}

	decodedData, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		return nil
	}

	var session WorkspaceSession
	if err := json.Unmarshal(decodedData, &session); err != nil {
		return nil
	}

	if time.Now().After(session.ExpiresAt) {
		return nil
	}

	return &session
}

// setSessionCookie writes the signed session cookie with a fresh expiry
func setSessionCookie(c *gin.Context, session *WorkspaceSession) error {
	session.ExpiresAt = time.Now().Add(24 * time.Hour)

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	encodedData := base64.URLEncoding.EncodeToString(data)
	signature := createSignature(encodedData)

	c.SetCookie("session", signature+"."+encodedData, 86400, "/", "", false, true)
	return nil
}

// createSignature creates an HMAC signature for data
func createSignature(data string) string {
	h := hmac.New(sha256.New, []byte(config.AppConfig.Session.Secret))
	h.Write([]byte(data))
	return base64.URLEncoding.EncodeToString(h.Sum(nil))
}

// verifySignature verifies an HMAC signature
func verifySignature(data, signature string) bool {
	expectedSignature := createSignature(data)
	return hmac.Equal([]byte(signature), []byte(expectedSignature))
}
