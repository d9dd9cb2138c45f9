package spesa

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/odit-bit/spesabot/spesa/list"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type AddItemRequest struct {
	Text string `json:"text"`
}

type SetQuantityRequest struct {
	Quantity string `json:"quantity"`
}

type ItemResponse struct {
	Item list.Item `json:"item"`
}

type ListResponse struct {
	Items []list.Item `json:"items"`
}

type AssistRequest struct {
	ListID   string `json:"list_id"`
	Question string `json:"question,omitempty"`
}

type AssistResponse struct {
	Created time.Time `json:"created"`
	Text    string    `json:"text"`
}

// RestHandler registers the list and assistant routes on e.
func RestHandler(ctx context.Context, s *Spesa, e *echo.Echo) {
	if e == nil {
		panic("got nil parameter")
	}

	meter := otel.Meter("spesa.rest")
	requestCounter, err := meter.Int64Counter(
		"spesa.http.request_total",
		metric.WithDescription("total number of HTTP request"),
	)
	if err != nil {
		panic(err)
	}

	// otel middleware
	e.Use(otelecho.Middleware("spesa-server"))

	// custom middleware to count requests
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			requestCounter.Add(c.Request().Context(), 1)
			return err
		}
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/v1/lists/:id/items", func(c echo.Context) error {
		var input AddItemRequest
		if err := c.Bind(&input); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json format"})
		}
		item, ok := s.Lists.Add(c.Param("id"), input.Text)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "item text cannot be empty"})
		}
		return c.JSON(http.StatusOK, ItemResponse{Item: item})
	})

	e.GET("/v1/lists/:id", func(c echo.Context) error {
		return c.JSON(http.StatusOK, ListResponse{Items: s.Lists.Items(c.Param("id"))})
	})

	e.DELETE("/v1/lists/:id/items/:index", func(c echo.Context) error {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid index"})
		}
		removed, ok := s.Lists.Remove(c.Param("id"), index)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "index out of range"})
		}
		return c.JSON(http.StatusOK, ItemResponse{Item: removed})
	})

	e.DELETE("/v1/lists/:id", func(c echo.Context) error {
		s.Lists.Clear(c.Param("id"))
		return c.NoContent(http.StatusNoContent)
	})

	e.PUT("/v1/lists/:id/items/:index/quantity", func(c echo.Context) error {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid index"})
		}
		var input SetQuantityRequest
		if err := c.Bind(&input); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json format"})
		}
		if !s.Lists.SetQuantity(c.Param("id"), index, input.Quantity) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "index out of range"})
		}
		return c.NoContent(http.StatusNoContent)
	})

	assistHandler := func(fn func(ctx context.Context, items []string, req AssistRequest) string) echo.HandlerFunc {
		return func(c echo.Context) error {
			var input AssistRequest
			if err := c.Bind(&input); err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json format"})
			}
			if input.ListID == "" {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "list_id is required"})
			}

			names := itemNames(s.Lists.Items(input.ListID))
			slog.Debug("assist request", "list", input.ListID, "items", len(names))

			text := fn(c.Request().Context(), names, input)
			return c.JSON(http.StatusOK, AssistResponse{
				Created: time.Now(),
				Text:    text,
			})
		}
	}

	e.POST("/v1/assist/suggest", assistHandler(
		func(ctx context.Context, items []string, _ AssistRequest) string {
			return s.Assist.Suggest(ctx, items)
		}))
	e.POST("/v1/assist/categories", assistHandler(
		func(ctx context.Context, items []string, _ AssistRequest) string {
			return s.Assist.Categorize(ctx, items)
		}))
	e.POST("/v1/assist/mealplan", assistHandler(
		func(ctx context.Context, items []string, _ AssistRequest) string {
			return s.Assist.MealPlan(ctx, items)
		}))
	e.POST("/v1/assist/ask", assistHandler(
		func(ctx context.Context, items []string, req AssistRequest) string {
			return s.Assist.Answer(ctx, items, req.Question)
		}))
}

func itemNames(items []list.Item) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}
