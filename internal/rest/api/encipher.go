package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigmasim/internal/core/usecases/encipher"
	"github.com/sergeii/enigmasim/internal/rest/model"
)

// Encipher godoc
// @Summary      Encipher text
// @Description  Encipher or decipher text with either an inline key or a stored profile.
// @Description  Letters with umlauts are transliterated, everything else that is not a letter is dropped.
// @Tags         encipher
// @Accept       json
// @Produce      json
// @Param        request body      model.Encipher  true  "Text and key"
// @Success      200     {object}  model.Enciphered
// @Failure      400     {object}  Error
// @Failure      404     {object}  Error
// @Failure      413     {object}  Error
// @Router       /encipher [post]
func (a *API) Encipher(c *gin.Context) {
	var form model.Encipher
	if err := c.ShouldBindJSON(&form); err != nil {
		a.logger.Debug().Err(err).Msg("Invalid encipher request")
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	req := encipher.Request{
		Text:      form.Text,
		Profile:   form.Profile,
		Positions: form.Positions,
		Group:     a.settings.GroupSize,
		Source:    encipher.SourceAPI,
	}
	if form.Key != nil {
		req.Key = form.Key.ToDomain()
	}
	if form.Group != nil {
		req.Group = *form.Group
	}

	result, err := a.container.Encipher.Execute(c, req)
	if err != nil {
		switch {
		case errors.Is(err, encipher.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, err)
		case errors.Is(err, encipher.ErrTextTooLong):
			abortWithError(c, http.StatusRequestEntityTooLarge, err)
		case errors.Is(err, encipher.ErrEmptyText),
			errors.Is(err, encipher.ErrNoKey),
			errors.Is(err, encipher.ErrInvalidKey):
			abortWithError(c, http.StatusBadRequest, err)
		default:
			a.logger.Error().Err(err).Msg("Failed to encipher text")
			abortWithStatus(c, http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewEncipheredFromResult(result))
}
