package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vendagame/backend/internal/application/usecase/auth"
	"github.com/vendagame/backend/internal/application/usecase/dashboard"
	"github.com/vendagame/backend/internal/application/usecase/goal"
	"github.com/vendagame/backend/internal/application/usecase/profile"
	"github.com/vendagame/backend/internal/application/usecase/ranking"
	"github.com/vendagame/backend/internal/application/usecase/sale"
	"github.com/vendagame/backend/internal/infra/server/router"
	"github.com/vendagame/backend/internal/integration/adapters"
	"github.com/vendagame/backend/internal/integration/cache"
	"github.com/vendagame/backend/internal/integration/email"
	"github.com/vendagame/backend/internal/integration/entrypoint/controller"
	"github.com/vendagame/backend/internal/integration/entrypoint/middleware"
	"github.com/vendagame/backend/internal/integration/persistence"
	"github.com/vendagame/backend/internal/integration/persistence/model"
	"github.com/vendagame/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	accessToken  string
	refreshToken string

	currentCompanyID   uuid.UUID
	currentProfileID   uuid.UUID
	lastSellerID       uuid.UUID
	lastSaleID         uuid.UUID
	lastGoalID         uuid.UUID
	consolidatedGoalID uuid.UUID
	lastResponseID     uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("vendagame", map[string]any{
			"companies":          &model.CompanyModel{},
			"profiles":           &model.ProfileModel{},
			"refresh_tokens":     &model.RefreshTokenModel{},
			"sales":              &model.SaleModel{},
			"individual_goals":   &model.IndividualGoalModel{},
			"consolidated_goals": &model.ConsolidatedGoalModel{},
			"email_queue":        &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Tenant and profile setup steps
	ctx.Given(`^a company exists named "([^"]*)"$`, test.aCompanyExistsNamed)
	ctx.Given(`^an admin exists with email "([^"]*)" and password "([^"]*)"$`, test.anAdminExistsWithEmailAndPassword)
	ctx.Given(`^a seller "([^"]*)" exists with email "([^"]*)"$`, test.aSellerExistsWithEmail)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Sale ledger setup steps
	ctx.Given(`^a sale of "([^"]*)" exists for "([^"]*)" on "([^"]*)" with status "([^"]*)"$`, test.aSaleExistsFor)

	// Goal setup steps
	ctx.Given(`^an individual goal of "([^"]*)" exists for "([^"]*)" in "([^"]*)"$`, test.anIndividualGoalExistsFor)
	ctx.Given(`^a consolidated goal of "([^"]*)" exists in "([^"]*)"$`, test.aConsolidatedGoalExistsIn)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentCompanyID = uuid.Nil
	t.currentProfileID = uuid.Nil
	t.lastSellerID = uuid.Nil
	t.lastSaleID = uuid.Nil
	t.lastGoalID = uuid.Nil
	t.consolidatedGoalID = uuid.Nil
	t.lastResponseID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			companyRepo := persistence.NewCompanyRepository(testDB.DbConn)
			profileRepo := persistence.NewProfileRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			saleRepo := persistence.NewSaleRepository(testDB.DbConn)
			individualGoalRepo := persistence.NewIndividualGoalRepository(testDB.DbConn)
			consolidatedGoalRepo := persistence.NewConsolidatedGoalRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			aggregateCache := cache.NewAggregateCache(mock.NewRedis(), time.Second)
			emailService := email.NewService(emailQueueRepo, "http://localhost:3000")

			// Create auth use cases
			registerCompanyUseCase := auth.NewRegisterCompanyUseCase(companyRepo, profileRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(profileRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(profileRepo, tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			// Create sale use cases
			createSaleUseCase := sale.NewCreateSaleUseCase(saleRepo, profileRepo, aggregateCache)
			listSalesUseCase := sale.NewListSalesUseCase(saleRepo, profileRepo)
			updateSaleStatusUseCase := sale.NewUpdateSaleStatusUseCase(saleRepo, profileRepo, individualGoalRepo, emailService, aggregateCache)
			deleteSaleUseCase := sale.NewDeleteSaleUseCase(saleRepo, aggregateCache)

			// Create goal use cases
			setIndividualGoalUseCase := goal.NewSetIndividualGoalUseCase(individualGoalRepo, profileRepo, aggregateCache)
			listIndividualGoalsUseCase := goal.NewListIndividualGoalsUseCase(individualGoalRepo, profileRepo, saleRepo)
			getIndividualGoalUseCase := goal.NewGetIndividualGoalUseCase(individualGoalRepo, profileRepo, saleRepo)
			deleteIndividualGoalUseCase := goal.NewDeleteIndividualGoalUseCase(individualGoalRepo, aggregateCache)
			setConsolidatedGoalUseCase := goal.NewSetConsolidatedGoalUseCase(consolidatedGoalRepo, aggregateCache)
			getConsolidatedGoalUseCase := goal.NewGetConsolidatedGoalUseCase(consolidatedGoalRepo, saleRepo, aggregateCache)
			deleteConsolidatedGoalUseCase := goal.NewDeleteConsolidatedGoalUseCase(consolidatedGoalRepo, aggregateCache)

			// Create ranking use cases
			getRankingUseCase := ranking.NewGetRankingUseCase(profileRepo, saleRepo, individualGoalRepo, consolidatedGoalRepo, aggregateCache)
			getPodiumUseCase := ranking.NewGetPodiumUseCase(getRankingUseCase)
			getGoalContributorsUseCase := ranking.NewGetGoalContributorsUseCase(consolidatedGoalRepo, profileRepo, saleRepo)

			// Create dashboard use cases
			getTeamHealthUseCase := dashboard.NewGetTeamHealthUseCase(profileRepo, saleRepo, individualGoalRepo, consolidatedGoalRepo, aggregateCache)
			getMonthlySeriesUseCase := dashboard.NewGetMonthlySeriesUseCase(saleRepo, consolidatedGoalRepo)

			// Create profile use cases
			createSellerUseCase := profile.NewCreateSellerUseCase(profileRepo, passwordService)
			listTeamUseCase := profile.NewListTeamUseCase(profileRepo)
			updateProfileUseCase := profile.NewUpdateProfileUseCase(profileRepo)
			getMeUseCase := profile.NewGetMeUseCase(profileRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			authController := controller.NewAuthController(
				registerCompanyUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
			)

			saleController := controller.NewSaleController(
				createSaleUseCase,
				listSalesUseCase,
				updateSaleStatusUseCase,
				deleteSaleUseCase,
			)

			goalController := controller.NewGoalController(
				setIndividualGoalUseCase,
				listIndividualGoalsUseCase,
				getIndividualGoalUseCase,
				deleteIndividualGoalUseCase,
				setConsolidatedGoalUseCase,
				getConsolidatedGoalUseCase,
				deleteConsolidatedGoalUseCase,
			)

			rankingController := controller.NewRankingController(
				getRankingUseCase,
				getPodiumUseCase,
				getGoalContributorsUseCase,
			)

			dashboardController := controller.NewDashboardController(
				getTeamHealthUseCase,
				getMonthlySeriesUseCase,
			)

			profileController := controller.NewProfileController(
				createSellerUseCase,
				listTeamUseCase,
				updateProfileUseCase,
				getMeUseCase,
			)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				saleController,
				goalController,
				rankingController,
				dashboardController,
				profileController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aCompanyExistsNamed(name string) error {
	companyID := uuid.New()
	t.currentCompanyID = companyID

	now := time.Now().UTC()
	company := &model.CompanyModel{
		ID:        companyID,
		Name:      name,
		Slug:      strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(company).Error
}

func (t *testContext) anAdminExistsWithEmailAndPassword(email, password string) error {
	return t.createProfile("Admin User", email, password, "admin")
}

func (t *testContext) aSellerExistsWithEmail(name, email string) error {
	return t.createProfile(name, email, "DefaultPass123!", "seller")
}

func (t *testContext) createProfile(name, email, password, role string) error {
	profileID := uuid.New()
	if role == "seller" {
		t.lastSellerID = profileID
	}

	now := time.Now().UTC()
	profileModel := &model.ProfileModel{
		ID:           profileID,
		CompanyID:    t.currentCompanyID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		Role:         role,
		Level:        "Bronze",
		Badges:       pq.StringArray{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(profileModel).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs issues token pairs for an already seeded profile, signed
// the same way the token service signs them.
func (t *testContext) iAmLoggedInAs(email string) error {
	var profileModel model.ProfileModel
	if err := t.db.DbConn.Where("email = ?", email).First(&profileModel).Error; err != nil {
		return fmt.Errorf("profile not found: %w", err)
	}

	t.currentProfileID = profileModel.ID
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    profileModel.ID.String(),
		"company_id": profileModel.CompanyID.String(),
		"email":      profileModel.Email,
		"role":       profileModel.Role,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "vendagame",
		"sub":        profileModel.ID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    profileModel.ID.String(),
		"company_id": profileModel.CompanyID.String(),
		"email":      profileModel.Email,
		"role":       profileModel.Role,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "vendagame",
		"sub":        profileModel.ID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		ProfileID:   profileModel.ID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) aSaleExistsFor(amount, email, saleDate, status string) error {
	var profileModel model.ProfileModel
	if err := t.db.DbConn.Where("email = ?", email).First(&profileModel).Error; err != nil {
		return fmt.Errorf("seller not found: %w", err)
	}

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid sale amount '%s': %w", amount, err)
	}

	parsedDate, err := time.Parse("2006-01-02", saleDate)
	if err != nil {
		return fmt.Errorf("invalid sale date '%s': %w", saleDate, err)
	}

	saleID := uuid.New()
	t.lastSaleID = saleID

	now := time.Now().UTC()
	saleModel := &model.SaleModel{
		ID:        saleID,
		SellerID:  profileModel.ID,
		CompanyID: profileModel.CompanyID,
		Amount:    parsedAmount,
		Status:    status,
		SaleDate:  parsedDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(saleModel).Error
}

func (t *testContext) anIndividualGoalExistsFor(target, email, month string) error {
	var profileModel model.ProfileModel
	if err := t.db.DbConn.Where("email = ?", email).First(&profileModel).Error; err != nil {
		return fmt.Errorf("seller not found: %w", err)
	}

	parsedTarget, err := decimal.NewFromString(target)
	if err != nil {
		return fmt.Errorf("invalid target amount '%s': %w", target, err)
	}

	referenceMonth, err := time.Parse("2006-01", month)
	if err != nil {
		return fmt.Errorf("invalid reference month '%s': %w", month, err)
	}

	goalID := uuid.New()
	t.lastGoalID = goalID

	now := time.Now().UTC()
	goalModel := &model.IndividualGoalModel{
		ID:             goalID,
		SellerID:       profileModel.ID,
		CompanyID:      profileModel.CompanyID,
		ReferenceMonth: referenceMonth,
		TargetAmount:   parsedTarget,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return t.db.DbConn.Create(goalModel).Error
}

func (t *testContext) aConsolidatedGoalExistsIn(target, month string) error {
	parsedTarget, err := decimal.NewFromString(target)
	if err != nil {
		return fmt.Errorf("invalid target amount '%s': %w", target, err)
	}

	referenceMonth, err := time.Parse("2006-01", month)
	if err != nil {
		return fmt.Errorf("invalid reference month '%s': %w", month, err)
	}

	goalID := uuid.New()
	t.consolidatedGoalID = goalID

	now := time.Now().UTC()
	goalModel := &model.ConsolidatedGoalModel{
		ID:             goalID,
		CompanyID:      t.currentCompanyID,
		ReferenceMonth: referenceMonth,
		TargetAmount:   parsedTarget,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return t.db.DbConn.Create(goalModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replaceTokenPlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replaceTokenPlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replaceTokenPlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replaceTokenPlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{company_id}}", t.currentCompanyID.String())
	content = strings.ReplaceAll(content, "{{seller_id}}", t.lastSellerID.String())
	content = strings.ReplaceAll(content, "{{sale_id}}", t.lastSaleID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.lastGoalID.String())
	content = strings.ReplaceAll(content, "{{consolidated_goal_id}}", t.consolidatedGoalID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastResponseID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture tokens issued by register/login for follow-up requests
	if token, ok := responseBody["access_token"].(string); ok && token != "" {
		t.accessToken = token
	}
	if token, ok := responseBody["refresh_token"].(string); ok && token != "" {
		t.refreshToken = token
	}

	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastResponseID = id
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
