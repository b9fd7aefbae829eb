package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auxillium/auxillium_backend/internal/service/doctor"
)

func TestMapDoctorError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"doctor not found", doctor.ErrNotFound, fiber.StatusNotFound},
		{"member not found", doctor.ErrMemberNotFound, fiber.StatusNotFound},
		{"invalid interval", doctor.ErrInvalidInterval, fiber.StatusBadRequest},
		{"no fee", doctor.ErrNoFee, fiber.StatusConflict},
		{"unexpected error", assert.AnError, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c fiber.Ctx) error {
				return mapDoctorError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
