package admins

import (
	"log"
	"net/http"
	"time"

	"artstudio-api/config"
	"artstudio-api/database"
	"artstudio-api/internal/domain/admins"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminProfile is what leaves the server. Password and PIN hashes never
// appear in a response.
type AdminProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toProfile(a admins.Administrator) AdminProfile {
	return AdminProfile{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}

func ListAdministrators(c *gin.Context) {
	var rows []admins.Administrator
	if err := database.DB.Order("id ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load administrators"})
		return
	}

	out := make([]AdminProfile, 0, len(rows))
	for _, a := range rows {
		out = append(out, toProfile(a))
	}
	c.JSON(http.StatusOK, out)
}

func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
		PIN      string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(input.PIN) != 4 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Security PIN must be exactly 4 characters"})
		return
	}

	var count int64
	if err := database.DB.Model(&admins.Administrator{}).
		Where("name = ? OR email = ?", input.Name, input.Email).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check for duplicates"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name or email already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	hashedPIN, err := bcrypt.GenerateFromPassword([]byte(input.PIN), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash PIN"})
		return
	}

	admin := admins.Administrator{
		Name:        input.Name,
		Email:       input.Email,
		Password:    string(hashedPassword),
		Role:        input.Role,
		SecurityPIN: string(hashedPIN),
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Println("❌ Failed to register administrator:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register administrator"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Administrator registered successfully", "id": admin.ID})
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin admins.Administrator
	if err := database.DB.Where("email = ?", input.Email).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"role":     admin.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.JWT_SECRET))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   signed,
		"admin":   toProfile(admin),
	})
}

// ResetPassword overwrites the password of the account matching the given
// email, after checking the 4-character recovery PIN.
func ResetPassword(c *gin.Context) {
	var input struct {
		Email       string `json:"email" binding:"required,email"`
		PIN         string `json:"pin" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin admins.Administrator
	err := database.DB.Where("email = ?", input.Email).First(&admin).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Email not registered"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up administrator"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.SecurityPIN), []byte(input.PIN)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Incorrect security PIN"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	if err := database.DB.Model(&admin).Update("password", string(hashed)).Error; err != nil {
		log.Println("❌ Failed to update password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func UpdateAdministrator(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
		Role  string `json:"role"`
		PIN   string `json:"pin"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin admins.Administrator
	if err := database.DB.First(&admin, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Administrator not found"})
		return
	}

	updates := map[string]interface{}{
		"name":  input.Name,
		"email": input.Email,
		"role":  input.Role,
	}
	if input.PIN != "" {
		if len(input.PIN) != 4 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Security PIN must be exactly 4 characters"})
			return
		}
		hashedPIN, err := bcrypt.GenerateFromPassword([]byte(input.PIN), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash PIN"})
			return
		}
		updates["security_pin"] = string(hashedPIN)
	}

	if err := database.DB.Model(&admin).Updates(updates).Error; err != nil {
		log.Println("❌ Failed to update administrator:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update administrator"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Administrator updated successfully"})
}

func DeleteAdministrator(c *gin.Context) {
	id := c.Param("id")

	var admin admins.Administrator
	if err := database.DB.First(&admin, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Administrator not found"})
		return
	}

	if err := database.DB.Delete(&admin).Error; err != nil {
		log.Println("❌ Failed to delete administrator:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete administrator"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Administrator deleted successfully"})
}
