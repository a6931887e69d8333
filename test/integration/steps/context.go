// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/grocery-tracker/backend/internal/application/usecase/auth"
	"github.com/grocery-tracker/backend/internal/application/usecase/budget"
	"github.com/grocery-tracker/backend/internal/application/usecase/forecast"
	"github.com/grocery-tracker/backend/internal/application/usecase/item"
	"github.com/grocery-tracker/backend/internal/application/usecase/purchase"
	"github.com/grocery-tracker/backend/internal/application/usecase/scan"
	"github.com/grocery-tracker/backend/internal/infra/server/router"
	"github.com/grocery-tracker/backend/internal/integration/adapters"
	"github.com/grocery-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/grocery-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/grocery-tracker/backend/internal/integration/persistence"
	"github.com/grocery-tracker/backend/internal/integration/persistence/model"
	"github.com/grocery-tracker/backend/internal/integration/reminder"
	"github.com/grocery-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

const reminderQueueKey = "reminders:scheduled"

type testContext struct {
	uri                string
	headers            map[string]string
	client             *http.Client
	response           *response
	db                 *mock.Db
	serverPort         int
	accessToken        string
	refreshToken       string
	currentHouseholdID uuid.UUID
	currentBudgetID    uuid.UUID
	currentItemID      uuid.UUID
	lastPurchaseID     uuid.UUID
	itemIDsByName      map[string]uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once
var lookupAPIMock *mock.ApiMock
var lookupAPIInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func initializeLookupAPI() {
	lookupAPIInit.Do(func() {
		lookupAPIMock = mock.NewApiServer()
		lookupAPIMock.Start()
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions against a fresh test
// context backed by the shared in-memory database.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()
	initializeLookupAPI()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("grocery_tracker", map[string]any{
			"households":    &model.HouseholdModel{},
			"budgets":       &model.BudgetModel{},
			"grocery_items": &model.GroceryItemModel{},
			"purchases":     &model.PurchaseModel{},
			"price_entries": &model.PriceEntryModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Household setup steps
	ctx.Given(`^a household exists with name "([^"]*)"$`, test.aHouseholdExistsWithName)
	ctx.Given(`^a household exists with name "([^"]*)" and passphrase "([^"]*)"$`, test.aHouseholdExistsWithNameAndPassphrase)
	ctx.Given(`^the household is logged in with valid tokens$`, test.theHouseholdIsLoggedInWithValidTokens)

	// Catalog setup steps
	ctx.Given(`^a grocery item exists with name "([^"]*)"$`, test.aGroceryItemExistsWithName)
	ctx.Given(`^a grocery item exists with name "([^"]*)" and brand "([^"]*)"$`, test.aGroceryItemExistsWithNameAndBrand)
	ctx.Given(`^a grocery item exists with name "([^"]*)" and category "([^"]*)"$`, test.aGroceryItemExistsWithNameAndCategory)

	// Budget setup steps
	ctx.Given(`^an active budget "([^"]*)" of "([^"]*)" exists from "([^"]*)" to "([^"]*)"$`, test.anActiveBudgetExists)

	// Purchase history setup steps
	ctx.Given(`^the item "([^"]*)" was purchased on "([^"]*)" for "([^"]*)"$`, test.theItemWasPurchasedOnFor)
	ctx.Given(`^the item "([^"]*)" was purchased (\d+) days ago for "([^"]*)"$`, test.theItemWasPurchasedDaysAgoFor)

	// Lookup API stub steps
	ctx.Given(`^the product API knows barcode "([^"]*)" as "([^"]*)" by "([^"]*)"$`, test.theProductAPIKnowsBarcode)
	ctx.Given(`^the product API has no product for barcode "([^"]*)"$`, test.theProductAPIHasNoProductFor)
	ctx.Given(`^the product API is failing for barcode "([^"]*)"$`, test.theProductAPIIsFailingFor)
	ctx.Given(`^the price API reports prices (.+) for barcode "([^"]*)"$`, test.thePriceAPIReportsPricesFor)
	ctx.Given(`^the price API has no prices for barcode "([^"]*)"$`, test.thePriceAPIHasNoPricesFor)

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

	// Reminder queue assertion steps
	ctx.Then(`^the reminder queue should contain (\d+) entries$`, test.theReminderQueueShouldContainEntries)
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
	t.currentHouseholdID = uuid.Nil
	t.currentBudgetID = uuid.Nil
	t.currentItemID = uuid.Nil
	t.lastPurchaseID = uuid.Nil
	t.itemIDsByName = make(map[string]uuid.UUID)

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			redisClient := mock.NewRedis()

			// Create repositories
			householdRepo := persistence.NewHouseholdRepository(testDB.DbConn)
			budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
			itemRepo := persistence.NewGroceryItemRepository(testDB.DbConn)
			purchaseRepo := persistence.NewPurchaseRepository(testDB.DbConn)
			priceRepo := persistence.NewPriceHistoryRepository(testDB.DbConn)

			// Create adapters/services
			passphraseService := adapters.NewPassphraseService()
			tokenService := adapters.NewTokenService(testJWTSecret)
			lookupService := adapters.NewOpenFoodFactsService(lookupAPIMock.GetUrl(), lookupAPIMock.GetUrl())
			predictionService := adapters.NewIntervalPredictionService()
			scheduler := reminder.NewScheduler(redisClient)

			// Create auth use cases
			registerUseCase := auth.NewRegisterHouseholdUseCase(householdRepo, passphraseService, tokenService)
			loginUseCase := auth.NewLoginHouseholdUseCase(householdRepo, passphraseService, tokenService)
			refreshUseCase := auth.NewRefreshTokenUseCase(tokenService)

			// Create budget use cases
			createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
			listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
			budgetSummaryUseCase := budget.NewGetBudgetSummaryUseCase(budgetRepo, purchaseRepo)

			// Create catalog use cases
			createItemUseCase := item.NewCreateItemUseCase(itemRepo)
			listItemsUseCase := item.NewListItemsUseCase(itemRepo)
			searchItemsUseCase := item.NewSearchItemsUseCase(itemRepo)
			priceHistoryUseCase := item.NewGetPriceHistoryUseCase(itemRepo, priceRepo)

			// Create purchase use cases
			recordPurchaseUseCase := purchase.NewRecordPurchaseUseCase(purchaseRepo, itemRepo, priceRepo)
			listPurchasesUseCase := purchase.NewListPurchasesUseCase(purchaseRepo)

			// Create forecast and scan use cases
			forecastUseCase := forecast.NewForecastReplenishmentUseCase(itemRepo, purchaseRepo, predictionService, scheduler)
			scanUseCase := scan.NewScanBarcodeUseCase(lookupService)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshUseCase)
			budgetController := controller.NewBudgetController(createBudgetUseCase, listBudgetsUseCase, budgetSummaryUseCase)
			itemController := controller.NewItemController(createItemUseCase, listItemsUseCase, searchItemsUseCase, priceHistoryUseCase)
			purchaseController := controller.NewPurchaseController(recordPurchaseUseCase, listPurchasesUseCase)
			forecastController := controller.NewForecastController(forecastUseCase)
			scanController := controller.NewScanController(scanUseCase)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiter()
			scanRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				budgetController,
				itemController,
				purchaseController,
				forecastController,
				scanController,
				loginRateLimiter,
				scanRateLimiter,
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

func (t *testContext) aHouseholdExistsWithName(name string) error {
	return t.createHousehold(name, "DefaultPass123!")
}

func (t *testContext) aHouseholdExistsWithNameAndPassphrase(name, passphrase string) error {
	return t.createHousehold(name, passphrase)
}

func (t *testContext) createHousehold(name, passphrase string) error {
	householdID := uuid.New()
	t.currentHouseholdID = householdID

	now := time.Now().UTC()
	household := &model.HouseholdModel{
		ID:             householdID,
		Name:           name,
		PassphraseHash: hashPassphrase(passphrase),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result := t.db.DbConn.Create(household)
	return result.Error
}

func hashPassphrase(passphrase string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash passphrase: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theHouseholdIsLoggedInWithValidTokens() error {
	var household model.HouseholdModel
	if err := t.db.DbConn.Where("id = ?", t.currentHouseholdID).First(&household).Error; err != nil {
		return fmt.Errorf("household not found: %w", err)
	}

	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"household_id":   t.currentHouseholdID.String(),
		"household_name": household.Name,
		"token_type":     "access",
		"exp":            jwt.NewNumericDate(now.Add(24 * time.Hour)),
		"iat":            jwt.NewNumericDate(now),
		"nbf":            jwt.NewNumericDate(now),
		"iss":            "grocery-tracker",
		"sub":            t.currentHouseholdID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"household_id":   t.currentHouseholdID.String(),
		"household_name": household.Name,
		"token_type":     "refresh",
		"exp":            jwt.NewNumericDate(now.Add(30 * 24 * time.Hour)),
		"iat":            jwt.NewNumericDate(now),
		"nbf":            jwt.NewNumericDate(now),
		"iss":            "grocery-tracker",
		"sub":            t.currentHouseholdID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	return nil
}

func (t *testContext) aGroceryItemExistsWithName(name string) error {
	return t.createItem(name, "", "")
}

func (t *testContext) aGroceryItemExistsWithNameAndBrand(name, brand string) error {
	return t.createItem(name, brand, "")
}

func (t *testContext) aGroceryItemExistsWithNameAndCategory(name, category string) error {
	return t.createItem(name, "", category)
}

func (t *testContext) createItem(name, brand, category string) error {
	itemID := uuid.New()
	t.currentItemID = itemID
	t.itemIDsByName[name] = itemID

	now := time.Now().UTC()
	itemModel := &model.GroceryItemModel{
		ID:        itemID,
		Name:      name,
		Brand:     brand,
		Category:  category,
		Unit:      "unit",
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(itemModel)
	return result.Error
}

func (t *testContext) anActiveBudgetExists(name, amount, startDate, endDate string) error {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("invalid start date '%s': %w", startDate, err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return fmt.Errorf("invalid end date '%s': %w", endDate, err)
	}
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	budgetID := uuid.New()
	t.currentBudgetID = budgetID

	now := time.Now().UTC()
	budgetModel := &model.BudgetModel{
		ID:        budgetID,
		Name:      name,
		Amount:    parsedAmount,
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(budgetModel)
	return result.Error
}

func (t *testContext) theItemWasPurchasedOnFor(itemName, date, cost string) error {
	purchaseDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid purchase date '%s': %w", date, err)
	}
	return t.createPurchase(itemName, purchaseDate, cost)
}

func (t *testContext) theItemWasPurchasedDaysAgoFor(itemName string, daysAgo int, cost string) error {
	purchaseDate := time.Now().UTC().AddDate(0, 0, -daysAgo)
	return t.createPurchase(itemName, purchaseDate, cost)
}

func (t *testContext) createPurchase(itemName string, date time.Time, cost string) error {
	itemID, ok := t.itemIDsByName[itemName]
	if !ok {
		return fmt.Errorf("item '%s' has not been created", itemName)
	}
	parsedCost, err := decimal.NewFromString(cost)
	if err != nil {
		return fmt.Errorf("invalid cost '%s': %w", cost, err)
	}

	purchaseModel := &model.PurchaseModel{
		ID:        uuid.New(),
		ItemID:    itemID,
		Quantity:  1,
		TotalCost: parsedCost,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}

	result := t.db.DbConn.Create(purchaseModel)
	return result.Error
}

func (t *testContext) theProductAPIKnowsBarcode(barcode, name, brand string) error {
	lookupAPIMock.SetResponse(-1, "GET", fmt.Sprintf("/api/v2/product/%s.json", barcode), http.StatusOK, map[string]any{
		"status": 1,
		"product": map[string]any{
			"product_name": name,
			"brands":       brand,
			"categories":   "Dairy",
			"quantity":     "1 L",
		},
	})
	return nil
}

func (t *testContext) theProductAPIHasNoProductFor(barcode string) error {
	lookupAPIMock.SetResponse(-1, "GET", fmt.Sprintf("/api/v2/product/%s.json", barcode), http.StatusOK, map[string]any{
		"status": 0,
	})
	return nil
}

func (t *testContext) theProductAPIIsFailingFor(barcode string) error {
	lookupAPIMock.SetResponse(-1, "GET", fmt.Sprintf("/api/v2/product/%s.json", barcode), http.StatusInternalServerError, map[string]any{
		"error": "upstream unavailable",
	})
	return nil
}

func (t *testContext) thePriceAPIReportsPricesFor(prices, barcode string) error {
	var items []map[string]any
	for _, raw := range strings.Split(prices, ",") {
		price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("invalid price '%s': %w", raw, err)
		}
		items = append(items, map[string]any{"price": price, "currency": "EUR"})
	}

	lookupAPIMock.SetResponse(-1, "GET", "/api/v1/prices", http.StatusOK, map[string]any{
		"total": len(items),
		"items": items,
	})
	return nil
}

func (t *testContext) thePriceAPIHasNoPricesFor(barcode string) error {
	lookupAPIMock.SetResponse(-1, "GET", "/api/v1/prices", http.StatusOK, map[string]any{
		"total": 0,
		"items": []map[string]any{},
	})
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	// Replace placeholders in path
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	// Replace placeholders in path
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{budget_id}}", t.currentBudgetID.String())
	content = strings.ReplaceAll(content, "{{item_id}}", t.currentItemID.String())
	content = strings.ReplaceAll(content, "{{purchase_id}}", t.lastPurchaseID.String())

	for name, id := range t.itemIDsByName {
		content = strings.ReplaceAll(content, fmt.Sprintf("{{item_id:%s}}", name), id.String())
	}

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
	} else {
		t.response.body = responseBody
		t.captureIDs(responseBody)
	}

	return nil
}

// captureIDs stores IDs returned by create endpoints so later steps can
// reference them through placeholders.
func (t *testContext) captureIDs(body map[string]any) {
	if idStr, ok := body["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			if name, ok := body["name"].(string); ok {
				t.currentItemID = id
				t.itemIDsByName[name] = id
			} else if _, ok := body["item_id"]; ok {
				t.lastPurchaseID = id
			}
		}
	}

	if budgetBody, ok := body["budget"].(map[string]any); ok {
		if idStr, ok := budgetBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.currentBudgetID = id
			}
		}
	}

	if purchaseBody, ok := body["purchase"].(map[string]any); ok {
		if idStr, ok := purchaseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastPurchaseID = id
			}
		}
	}
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

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
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

		query := t.db.DbConn.Unscoped()
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

func (t *testContext) theReminderQueueShouldContainEntries(quantity int) error {
	count, err := mock.NewRedis().ZCard(context.Background(), reminderQueueKey).Result()
	if err != nil {
		return fmt.Errorf("failed to read reminder queue: %w", err)
	}
	if int(count) != quantity {
		return fmt.Errorf("expected %d entries in reminder queue, got %d", quantity, count)
	}
	return nil
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
