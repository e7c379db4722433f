package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"assistant-srv/pkg/discord"
	pkgErrors "assistant-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. Mapped HTTPErrors keep their status code;
// anything else becomes a 500 and is reported to Discord when configured.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	if discordClient != nil {
		ctx := c.Request.Context()
		_ = discordClient.SendError(ctx,
			"Internal error",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			err)
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   DefaultErrorMessage,
	})
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	if discordClient != nil {
		ctx := c.Request.Context()
		_ = discordClient.SendError(ctx,
			"Panic recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   DefaultErrorMessage,
	})
}
