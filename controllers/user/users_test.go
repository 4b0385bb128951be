package userControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/models"
	"github.com/rakshit9/WDM-ecom/testdb"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.POST("/users/signup", Signup(db))
	r.POST("/users/login", Login(db, testSecret))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signupBody(username string) SignupInput {
	return SignupInput{
		FirstName: "Pat",
		LastName:  "Doe",
		Username:  username,
		Email:     username + "@example.com",
		Password:  "sekret123",
	}
}

func TestSignupAndLoginRoundTrip(t *testing.T) {
	db := testdb.Open(t)
	r := newAuthRouter(db)

	w := doJSON(t, r, http.MethodPost, "/users/signup", signupBody("pat"))
	require.Equal(t, http.StatusCreated, w.Code)

	// Password must never be stored in the clear.
	var user models.User
	require.NoError(t, db.Preload("Role").Where("username = ?", "pat").First(&user).Error)
	assert.NotEqual(t, "sekret123", user.Password)
	require.NotNil(t, user.Role)
	assert.Equal(t, models.RoleCustomer, user.Role.RoleType)

	w = doJSON(t, r, http.MethodPost, "/users/login", LoginInput{Username: "pat", Password: "sekret123"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.EqualValues(t, user.UserID, claims["id"])
	assert.Equal(t, false, claims["isAdmin"])
}

func TestSignupRejectsDuplicate(t *testing.T) {
	db := testdb.Open(t)
	r := newAuthRouter(db)

	w := doJSON(t, r, http.MethodPost, "/users/signup", signupBody("pat"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/users/signup", signupBody("pat"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	db := testdb.Open(t)
	r := newAuthRouter(db)

	body := signupBody("pat")
	body.RoleType = "superuser"
	w := doJSON(t, r, http.MethodPost, "/users/signup", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupAdminSetsTokenFlag(t *testing.T) {
	db := testdb.Open(t)
	r := newAuthRouter(db)

	body := signupBody("boss")
	body.RoleType = string(models.RoleAdmin)
	w := doJSON(t, r, http.MethodPost, "/users/signup", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.Where("username = ?", "boss").First(&user).Error)
	assert.True(t, user.IsAdmin)
}

func TestLoginWrongPassword(t *testing.T) {
	db := testdb.Open(t)
	r := newAuthRouter(db)

	doJSON(t, r, http.MethodPost, "/users/signup", signupBody("pat"))
	w := doJSON(t, r, http.MethodPost, "/users/login", LoginInput{Username: "pat", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	db := testdb.Open(t)
	r := newAuthRouter(db)

	w := doJSON(t, r, http.MethodPost, "/users/login", LoginInput{Username: "ghost", Password: "whatever"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateAddress(t *testing.T) {
	db := testdb.Open(t)
	auth := newAuthRouter(db)
	doJSON(t, auth, http.MethodPost, "/users/signup", signupBody("mover"))

	var user models.User
	require.NoError(t, db.Where("username = ?", "mover").First(&user).Error)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", user.UserID)
		c.Set("is_admin", false)
	})
	r.PUT("/users/address", UpdateAddress(db))

	w := doJSON(t, r, http.MethodPut, "/users/address", AddressInput{
		AddressLine1: "1 Main St",
		City:         "Arlington",
		State:        "TX",
		PostalCode:   "76010",
		Country:      "USA",
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&user, user.UserID).Error)
	assert.Equal(t, "1 Main St", user.AddressLine1)
	assert.Equal(t, "Arlington", user.City)
}

func TestUpdateUserForbiddenForOthers(t *testing.T) {
	db := testdb.Open(t)
	auth := newAuthRouter(db)
	doJSON(t, auth, http.MethodPost, "/users/signup", signupBody("victim"))
	doJSON(t, auth, http.MethodPost, "/users/signup", signupBody("attacker"))

	var victim, attacker models.User
	require.NoError(t, db.Where("username = ?", "victim").First(&victim).Error)
	require.NoError(t, db.Where("username = ?", "attacker").First(&attacker).Error)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", attacker.UserID)
		c.Set("is_admin", false)
	})
	r.PUT("/users/:id", UpdateUser(db))

	w := doJSON(t, r, http.MethodPut, "/users/"+itoa(victim.UserID), map[string]string{"firstName": "Hacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteUserAsAdmin(t *testing.T) {
	db := testdb.Open(t)
	auth := newAuthRouter(db)
	doJSON(t, auth, http.MethodPost, "/users/signup", signupBody("target"))

	var target models.User
	require.NoError(t, db.Where("username = ?", "target").First(&target).Error)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint(9999))
		c.Set("is_admin", true)
	})
	r.DELETE("/users/:id", DeleteUser(db))

	req := httptest.NewRequest(http.MethodDelete, "/users/"+itoa(target.UserID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	err := db.First(&models.User{}, target.UserID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
