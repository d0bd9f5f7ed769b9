package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appAuth "github.com/arda/campusconnect/internal/app/auth"
	"github.com/arda/campusconnect/internal/app/controllers"
	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/app/repositories"
	"github.com/arda/campusconnect/internal/app/services"
	"github.com/arda/campusconnect/internal/middleware"
	pkgAuth "github.com/arda/campusconnect/internal/pkg/auth"
	"github.com/arda/campusconnect/internal/pkg/filestorage"
)

// setupRouterTest wires the full route table over real services backed by
// temp directories, so role gates are exercised exactly as in production.
func setupRouterTest(t *testing.T) (*gin.Engine, *pkgAuth.JWTService, *repositories.Repositories) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := repositories.NewRepositories(t.TempDir())
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campusconnect.test",
	})
	authzSvc := appAuth.NewAuthorizationService()
	maxSize := int64(10 * 1024 * 1024)
	log := zerolog.Nop()

	authService := services.NewAuthService(repos.UserRepository, jwtService)
	noticeService := services.NewNoticeService(repos.NoticeRepository, authzSvc)
	eventService := services.NewEventService(repos.EventRepository, authzSvc, storage, maxSize, []string{"jpg", "png"})
	materialService := services.NewMaterialService(repos.MaterialRepository, authzSvc, storage, maxSize, []string{"pdf"})
	resumeService := services.NewResumeService(repos.ResumeRepository, authzSvc, storage, maxSize, []string{"pdf"})

	router := gin.New()
	SetupRouter(
		router,
		controllers.NewAuthController(authService, log),
		controllers.NewNoticeController(noticeService, log),
		controllers.NewEventController(eventService, log),
		controllers.NewMaterialController(materialService, log),
		controllers.NewResumeController(resumeService, log),
		middleware.NewAuthMiddleware(jwtService, repos.UserRepository),
	)
	return router, jwtService, repos
}

func tokenFor(t *testing.T, jwtService *pkgAuth.JWTService, repos *repositories.Repositories, role models.Role) string {
	t.Helper()
	user := models.User{
		ID:       "u-" + string(role),
		Name:     "Route Test",
		Email:    string(role) + "@campus.edu",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, repos.UserRepository.Insert(user))
	token, err := jwtService.GenerateToken(&user)
	require.NoError(t, err)
	return token
}

func get(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMaterialStatsRequiresStaffRole(t *testing.T) {
	router, jwtService, repos := setupRouterTest(t)

	studentToken := tokenFor(t, jwtService, repos, models.RoleStudent)
	facultyToken := tokenFor(t, jwtService, repos, models.RoleFaculty)

	assert.Equal(t, http.StatusForbidden, get(router, "/api/materials/stats/overview", studentToken).Code)
	assert.Equal(t, http.StatusOK, get(router, "/api/materials/stats/overview", facultyToken).Code)
}

func TestOwnResumeListRequiresStudentRole(t *testing.T) {
	router, jwtService, repos := setupRouterTest(t)

	studentToken := tokenFor(t, jwtService, repos, models.RoleStudent)
	facultyToken := tokenFor(t, jwtService, repos, models.RoleFaculty)

	assert.Equal(t, http.StatusForbidden, get(router, "/api/resumes/my/list", facultyToken).Code)
	assert.Equal(t, http.StatusOK, get(router, "/api/resumes/my/list", studentToken).Code)
}

func TestHealthEndpointIsPublic(t *testing.T) {
	router, _, _ := setupRouterTest(t)

	assert.Equal(t, http.StatusOK, get(router, "/api/health", "").Code)
}
