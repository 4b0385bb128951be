package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/ai"
	"github.com/rakshit9/WDM-ecom/middleware"
	"github.com/rakshit9/WDM-ecom/models"
)

// sellerOrAdmin checks that the caller may manage catalog entries.
func sellerOrAdmin(c *gin.Context, db *gorm.DB, userID uint) bool {
	if middleware.IsAdmin(c) {
		return true
	}
	var role models.Role
	if err := db.First(&role, "user_id = ?", userID).Error; err != nil {
		return false
	}
	return role.RoleType == models.RoleSeller
}

// saveImages stores uploaded files under uploadsDir with uuid names and
// returns the public references. Image bytes are never interpreted.
func saveImages(c *gin.Context, uploadsDir string) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, err
	}

	var refs []string
	for _, file := range files {
		name := uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(uploadsDir, name)); err != nil {
			return nil, err
		}
		refs = append(refs, "/uploads/"+name)
	}
	return refs, nil
}

// POST /api/products (seller or admin)
// Multipart form: title, brand, type, price, availableQty, optional
// description and imageUrls, plus "images" file parts.
func CreateProduct(db *gorm.DB, gen ai.Generator, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !sellerOrAdmin(c, db, userID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only sellers can add products"})
			return
		}

		title := c.PostForm("title")
		brand := c.PostForm("brand")
		productType := c.PostForm("type")
		priceStr := c.PostForm("price")
		qtyStr := c.PostForm("availableQty")
		if title == "" || brand == "" || productType == "" || priceStr == "" || qtyStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, brand, type, price and availableQty are required"})
			return
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil || qty < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availableQty"})
			return
		}

		images, err := saveImages(c, uploadsDir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save images: %v", err)})
			return
		}
		// URL references are stored verbatim alongside uploads.
		for _, u := range c.PostFormArray("imageUrls") {
			if u = strings.TrimSpace(u); u != "" {
				images = append(images, u)
			}
		}
		if len(images) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one image is required"})
			return
		}

		description := c.PostForm("description")
		if description == "" {
			description = ai.Describe(c.Request.Context(), gen, title, productType)
		}

		product := models.Product{
			Title:            title,
			Description:      description,
			Brand:            brand,
			Type:             productType,
			Price:            price,
			AvailableQty:     qty,
			Images:           images,
			ProductCreatedBy: userID,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "product": product})
	}
}

// POST /api/products/generate-description
func GenerateDescription(gen ai.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name     string `json:"name" binding:"required"`
			Category string `json:"category" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and category are required"})
			return
		}

		description := ai.Describe(c.Request.Context(), gen, input.Name, input.Category)
		c.JSON(http.StatusOK, gin.H{"description": description})
	}
}
