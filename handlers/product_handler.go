package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"cake-shop/models"
	"cake-shop/services"
)

const storeTimeout = 10 * time.Second

// ListProducts returns every cake in the catalog
func ListProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	products, err := services.Catalog().List(ctx)
	if err != nil {
		slog.Error("Failed to list products", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Не удалось получить каталог",
		})
	}

	return c.JSON(products)
}

// GetProduct returns a single cake by id
func GetProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	product, err := services.Catalog().Get(ctx, id)
	if err != nil {
		return storeError(c, err, id)
	}

	return c.JSON(product)
}

// CreateProduct adds a cake and returns it with the assigned id
func CreateProduct(c *fiber.Ctx) error {
	fields, err := parseProductFields(c)
	if err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	product, err := services.Catalog().Create(ctx, fields)
	if err != nil {
		slog.Error("Failed to create product", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Не удалось сохранить торт",
		})
	}

	slog.Info("Product created", "id", product.ID, "name", product.Name)
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct replaces all mutable fields of a cake, keeping its id
func UpdateProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return badRequest(c, err)
	}
	fields, err := parseProductFields(c)
	if err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	product, err := services.Catalog().Update(ctx, id, fields)
	if err != nil {
		return storeError(c, err, id)
	}

	slog.Info("Product updated", "id", product.ID)
	return c.JSON(product)
}

// DeleteProduct removes a cake by id
func DeleteProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := services.Catalog().Delete(ctx, id); err != nil {
		return storeError(c, err, id)
	}

	slog.Info("Product deleted", "id", id)
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Торт %d удалён", id),
	})
}

func parseProductID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, errors.New("Некорректный идентификатор торта")
	}
	// Non-positive ids never exist in the store and fall out as 404 there.
	return int64(id), nil
}

func parseProductFields(c *fiber.Ctx) (models.ProductFields, error) {
	var fields models.ProductFields
	if err := c.BodyParser(&fields); err != nil {
		return fields, errors.New("Некорректное тело запроса")
	}

	fields.Name = strings.TrimSpace(fields.Name)
	if fields.Name == "" {
		return fields, errors.New("Название торта обязательно")
	}
	if fields.Price < 0 || fields.Stock < 0 {
		return fields, errors.New("Цена и остаток не могут быть отрицательными")
	}
	return fields, nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func storeError(c *fiber.Ctx, err error, id int64) error {
	if errors.Is(err, services.ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Торт не найден",
		})
	}
	slog.Error("Catalog store error", "error", err, "id", id)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Ошибка хранилища",
	})
}
