package partners

import (
	"log"
	"net/http"

	"artstudio-api/database"
	"artstudio-api/internal/app/http/middleware"
	"artstudio-api/internal/domain/media"
	"artstudio-api/internal/domain/partners"
	"artstudio-api/internal/infra/images"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PartnerItem struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Image *media.ImageRef `json:"image"`
}

func toItem(p partners.PartnerBrand) PartnerItem {
	item := PartnerItem{ID: p.ID, Name: p.Name}
	if refs := media.DecodeCover(p.Image); len(refs) > 0 {
		item.Image = &refs[0]
	}
	return item
}

func ListPartners(c *gin.Context) {
	var rows []partners.PartnerBrand
	if err := database.DB.Order("id ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load partner brands"})
		return
	}

	out := make([]PartnerItem, 0, len(rows))
	for _, p := range rows {
		out = append(out, toItem(p))
	}
	c.JSON(http.StatusOK, out)
}

func CreatePartner(c *gin.Context) {
	name := c.PostForm("name")
	uploaded := middleware.Uploaded(c)

	if name == "" || len(uploaded) == 0 {
		images.DestroyAll(c.Request.Context(), images.Logos, uploaded)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and logo are required"})
		return
	}

	brand := partners.PartnerBrand{
		Name:  name,
		Image: media.EncodeOne(uploaded[0]),
	}
	if err := database.DB.Create(&brand).Error; err != nil {
		log.Println("❌ Failed to create partner brand:", err)
		if failed := images.DestroyAll(c.Request.Context(), images.Logos, uploaded); failed > 0 {
			log.Printf("⚠️ %d uploaded images could not be cleaned up", failed)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partner brand"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Partner brand created successfully", "id": brand.ID})
}

// UpdatePartner accepts a name, a logo, or both; the column list is built
// from whatever arrived. A request with neither is rejected.
func UpdatePartner(c *gin.Context) {
	id := c.Param("id")
	name := c.PostForm("name")
	uploaded := middleware.Uploaded(c)

	if name == "" && len(uploaded) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Send a name or a logo to update"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var brand partners.PartnerBrand
		if err := tx.First(&brand, "id = ?", id).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if name != "" {
			updates["name"] = name
		}
		if len(uploaded) > 0 {
			old := media.DecodeCover(brand.Image)
			if failed := images.DestroyAll(c.Request.Context(), images.Logos, old); failed > 0 {
				log.Printf("⚠️ %d superseded images could not be deleted", failed)
			}
			updates["image"] = media.EncodeOne(uploaded[0])
		}

		return tx.Model(&brand).Updates(updates).Error
	})
	if err != nil {
		images.DestroyAll(c.Request.Context(), images.Logos, uploaded)
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Partner brand not found"})
			return
		}
		log.Println("❌ Failed to update partner brand:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner brand"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Partner brand updated successfully"})
}

func DeletePartner(c *gin.Context) {
	id := c.Param("id")

	var brand partners.PartnerBrand
	if err := database.DB.First(&brand, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Partner brand not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load partner brand"})
		return
	}

	refs := media.DecodeCover(brand.Image)
	failed := images.DestroyAll(c.Request.Context(), images.Logos, refs)

	if err := database.DB.Delete(&brand).Error; err != nil {
		log.Println("❌ Failed to delete partner brand:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete partner brand"})
		return
	}

	resp := gin.H{"message": "Partner brand deleted", "deletedImages": len(refs)}
	if failed > 0 {
		resp["failedImages"] = failed
	}
	c.JSON(http.StatusOK, resp)
}
