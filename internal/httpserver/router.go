package httpserver

import (
	"github.com/labstack/echo/v4"
)

type Deps struct {
	AuthHandler    *AuthHandler
	ProductHandler *ProductHandler
	UploadDir      string
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	e.POST("/login", d.AuthHandler.Login)
	e.POST("/change-password", d.AuthHandler.ChangePassword)

	e.POST("/add-product", d.ProductHandler.AddProduct)
	e.GET("/products", d.ProductHandler.GetProducts)
	e.PUT("/edit-product/:id", d.ProductHandler.EditProduct)
	e.DELETE("/delete-product/:id", d.ProductHandler.DeleteProduct)

	e.Static("/uploads", d.UploadDir)
}
