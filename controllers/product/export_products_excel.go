package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/middleware"
	"github.com/rakshit9/WDM-ecom/models"
)

// GET /api/products/export-excel
// Sellers export their own catalog; admins export everything.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		query := db.Model(&models.Product{})
		if !middleware.IsAdmin(c) {
			query = query.Where("product_created_by = ?", userID)
		}

		var products []models.Product
		if err := query.Order("product_id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ProductID", "Title", "Brand", "Type", "Price", "AvailableQty", "Images", "SellerID"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(int(p.ProductID))
			row.AddCell().SetValue(p.Title)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Type)
			row.AddCell().SetValue(p.Price.StringFixed(2))
			row.AddCell().SetValue(p.AvailableQty)
			row.AddCell().SetValue(strings.Join(p.Images, ","))
			row.AddCell().SetValue(int(p.ProductCreatedBy))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
