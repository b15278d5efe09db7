package template_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"deepresearch-backend/internal/api/v1/template"
	"deepresearch-backend/internal/database"
	"deepresearch-backend/internal/models"
	"deepresearch-backend/internal/services"
	"deepresearch-backend/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestDB() {
	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("failed to connect database: %v", err))
	}

	if err := db.AutoMigrate(&models.Prompt{}, &models.PromptTemplate{}, &models.APIConfig{}); err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
}

func setupTestRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	t.Cleanup(mr.Close)

	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func setupHandlers() {
	gin.SetMode(gin.TestMode)

	svc := &services.PromptService{
		Notifier: &services.Notifier{
			SendEmail:    func(to, subject, promptContent, result string) bool { return false },
			SendSMS:      func(to, body string) bool { return false },
			SendWhatsApp: func(to, body string) bool { return false },
		},
	}

	router := gin.New()
	template.RegisterRoutes(router.Group("/api/v1"), svc)
}

func TestCreateTemplate(t *testing.T) {
	setupTestDB()
	setupTestRedis(t)
	setupHandlers()

	body, _ := json.Marshal(template.SaveTemplateRequest{
		Name:            "summary",
		TemplateContent: "Summarize {{topic}} in {{length}} words",
		Category:        "research",
		IsPublic:        true,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/v1/templates", bytes.NewBuffer(body))

	template.CreateTemplate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.PromptTemplate `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "summary", resp.Data.Name)
	assert.NotZero(t, resp.Data.ID)
	assert.Equal(t, 0, resp.Data.UsageCount)
}

func TestCreateTemplateRequiresContent(t *testing.T) {
	setupTestDB()
	setupTestRedis(t)
	setupHandlers()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/v1/templates", bytes.NewBufferString(`{"name":"x"}`))

	template.CreateTemplate(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplyTemplateEndpoint(t *testing.T) {
	setupTestDB()
	setupTestRedis(t)
	setupHandlers()

	tpl := models.PromptTemplate{
		Name:            "summary",
		TemplateContent: "Summarize {{topic}} in {{length}} words",
	}
	database.DB.Create(&tpl)

	body, _ := json.Marshal(template.ApplyTemplateRequest{
		Variables: map[string]string{"topic": "AI", "length": "100"},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", fmt.Sprintf("/api/v1/templates/%d/apply", tpl.ID), bytes.NewBuffer(body))
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(tpl.ID)}}

	template.ApplyTemplate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.Prompt `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Summarize AI in 100 words", resp.Data.Content)
	assert.Equal(t, models.PromptSourceTemplate, resp.Data.Source)

	var stored models.PromptTemplate
	database.DB.First(&stored, tpl.ID)
	assert.Equal(t, 1, stored.UsageCount)
}

func TestApplyTemplateNotFound(t *testing.T) {
	setupTestDB()
	setupTestRedis(t)
	setupHandlers()

	body, _ := json.Marshal(template.ApplyTemplateRequest{Variables: map[string]string{}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/v1/templates/999/apply", bytes.NewBuffer(body))
	c.Params = gin.Params{{Key: "id", Value: "999"}}

	template.ApplyTemplate(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidateTemplate(t *testing.T) {
	setupTestDB()
	setupHandlers()

	body := `{"template_content":"Write about {{topic}} for {{audience}}"}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/v1/templates/validate", bytes.NewBufferString(body))

	template.ValidateTemplate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data template.ValidateTemplateResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, []string{"topic", "audience"}, resp.Data.Placeholders)
}

func TestPreviewTemplate(t *testing.T) {
	setupTestDB()
	setupHandlers()

	body := `{"template_content":"Hello <name>","placeholder_format":"<%s>","variables":{"name":"World"}}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/v1/templates/preview", bytes.NewBufferString(body))

	template.PreviewTemplate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data template.PreviewTemplateResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Hello World", resp.Data.Preview)
}

func TestUpdateAndDeleteTemplate(t *testing.T) {
	setupTestDB()
	setupTestRedis(t)
	setupHandlers()

	tpl := models.PromptTemplate{Name: "old", TemplateContent: "old content"}
	database.DB.Create(&tpl)

	body, _ := json.Marshal(template.SaveTemplateRequest{
		Name:            "new",
		TemplateContent: "new content",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("PUT", fmt.Sprintf("/api/v1/templates/%d", tpl.ID), bytes.NewBuffer(body))
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(tpl.ID)}}

	template.UpdateTemplate(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.PromptTemplate
	database.DB.First(&stored, tpl.ID)
	assert.Equal(t, "new", stored.Name)
	assert.Equal(t, "new content", stored.TemplateContent)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("DELETE", fmt.Sprintf("/api/v1/templates/%d", tpl.ID), nil)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(tpl.ID)}}

	template.DeleteTemplate(c)
	assert.Equal(t, http.StatusOK, w.Code)

	err := database.DB.First(&stored, tpl.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
