package shop

import (
	"log"
	"net/http"
	"strconv"

	"artstudio-api/database"
	"artstudio-api/internal/app/http/middleware"
	"artstudio-api/internal/domain/media"
	"artstudio-api/internal/domain/shop"
	"artstudio-api/internal/infra/images"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ShopItemDTO struct {
	ID      uint             `json:"id"`
	Name    string           `json:"name"`
	Content string           `json:"content"`
	Price   float64          `json:"price"`
	Cover   []media.ImageRef `json:"cover"`
}

func ListItems(c *gin.Context) {
	var rows []shop.ShopItem
	if err := database.DB.Order("id DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shop items"})
		return
	}

	out := make([]ShopItemDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ShopItemDTO{
			ID:      r.ID,
			Name:    r.Name,
			Content: r.Content,
			Price:   r.Price,
			Cover:   media.DecodeCover(r.Cover),
		})
	}
	c.JSON(http.StatusOK, out)
}

func CreateItem(c *gin.Context) {
	name := c.PostForm("name")
	content := c.PostForm("content")
	priceStr := c.PostForm("price")
	uploaded := middleware.Uploaded(c)

	if name == "" || content == "" || priceStr == "" || len(uploaded) == 0 {
		images.DestroyAll(c.Request.Context(), images.Covers, uploaded)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields or images"})
		return
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		images.DestroyAll(c.Request.Context(), images.Covers, uploaded)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price"})
		return
	}

	item := shop.ShopItem{
		Name:    name,
		Content: content,
		Price:   price,
		AdminID: adminIDOrDefault(c),
		Cover:   media.EncodeCover(uploaded),
	}
	if err := database.DB.Create(&item).Error; err != nil {
		log.Println("❌ Failed to create shop item:", err)
		if failed := images.DestroyAll(c.Request.Context(), images.Covers, uploaded); failed > 0 {
			log.Printf("⚠️ %d uploaded images could not be cleaned up", failed)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shop item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Shop item created successfully", "id": item.ID})
}

// UpdateItem takes the target id from the form body and answers with the
// cover that ended up stored, replaced or not.
func UpdateItem(c *gin.Context) {
	id := c.PostForm("id")
	name := c.PostForm("name")
	content := c.PostForm("content")
	priceStr := c.PostForm("price")
	uploaded := middleware.Uploaded(c)

	if id == "" || name == "" || content == "" || priceStr == "" {
		images.DestroyAll(c.Request.Context(), images.Covers, uploaded)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		images.DestroyAll(c.Request.Context(), images.Covers, uploaded)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price"})
		return
	}

	var finalCover []media.ImageRef
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var item shop.ShopItem
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			return err
		}

		if len(uploaded) > 0 {
			old := media.DecodeCover(item.Cover)
			if failed := images.DestroyAll(c.Request.Context(), images.Covers, old); failed > 0 {
				log.Printf("⚠️ %d superseded images could not be deleted", failed)
			}
			item.Cover = media.EncodeCover(uploaded)
		}

		item.Name = name
		item.Content = content
		item.Price = price
		finalCover = media.DecodeCover(item.Cover)
		return tx.Save(&item).Error
	})
	if err != nil {
		images.DestroyAll(c.Request.Context(), images.Covers, uploaded)
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shop item not found"})
			return
		}
		log.Println("❌ Failed to update shop item:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shop item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shop item updated successfully", "cover": finalCover})
}

func DeleteItem(c *gin.Context) {
	id := c.Param("id")

	var item shop.ShopItem
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shop item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shop item"})
		return
	}

	cover := media.DecodeCover(item.Cover)
	failed := images.DestroyAll(c.Request.Context(), images.Covers, cover)

	if err := database.DB.Delete(&item).Error; err != nil {
		log.Println("❌ Failed to delete shop item:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shop item"})
		return
	}

	resp := gin.H{"message": "Shop item deleted", "deletedImages": len(cover)}
	if failed > 0 {
		resp["failedImages"] = failed
	}
	c.JSON(http.StatusOK, resp)
}

func adminIDOrDefault(c *gin.Context) uint {
	if v := c.PostForm("admin_id"); v != "" {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			return uint(parsed)
		}
	}
	return 1
}
