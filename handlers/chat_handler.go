package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"cake-shop/models"
	"cake-shop/services"
)

// chatTimeout bounds the whole chat request, including the AI fallback
// chain. Individual model attempts carry their own shorter timeout.
const chatTimeout = 2 * time.Minute

const maxReplySentences = 2

// Chatbot answers a customer message: first from the catalog, then from the
// AI fallback when no product name matches.
func Chatbot(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Некорректное тело запроса",
		})
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Сообщение пустое",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), chatTimeout)
	defer cancel()

	products, err := services.Catalog().List(ctx)
	if err != nil {
		slog.Error("Failed to load catalog for chat", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Не удалось получить каталог",
		})
	}

	if product, score, ok := services.ProductMatcher().FindBest(message, products); ok {
		slog.Info("Chat answered from catalog", "product", product.Name, "score", score)
		return c.JSON(models.ChatResponse{
			Source: models.SourceLocal,
			Reply:  formatLocalReply(product),
		})
	}

	reply := services.AskGeminiShort(ctx, message, maxReplySentences)
	slog.Info("Chat answered by AI fallback", "messageLength", len(message))
	return c.JSON(models.ChatResponse{
		Source: models.SourceAI,
		Reply:  reply,
	})
}

func formatLocalReply(p models.Product) string {
	price := strconv.FormatFloat(p.Price, 'f', -1, 64)
	return fmt.Sprintf("Да, есть %s. %s. Цена: %s₸. В наличии: %d шт.",
		p.Name, p.Description, price, p.Stock)
}
