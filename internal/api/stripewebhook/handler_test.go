package stripewebhooks

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clipgenie/internal/domain/accounts"
	"clipgenie/internal/domain/plans"
	billing "clipgenie/internal/infra/stripe"
	"clipgenie/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const whSecret = "whsec_test"

func newHandler(t *testing.T) (*Handler, *accounts.MemoryStore, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := accounts.NewMemoryStore()
	h := &Handler{
		Store:    store,
		Registry: session.NewRegistry(zap.NewNop()),
		Prices:   billing.NewPriceMap("price_pro", "price_biz"),
		Secret:   whSecret,
		Log:      zap.NewNop(),
	}
	r := gin.New()
	r.POST("/webhook", h.StripeWebhook)
	return h, store, r
}

func sign(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", ts.Unix())
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func event(t *testing.T, typ string, object map[string]any) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"id":          "evt_1",
		"object":      "event",
		"type":        typ,
		"api_version": "2020-08-27",
		"data":        map[string]any{"object": object},
	})
	require.NoError(t, err)
	return b
}

func subscription(id, status, price string, metadata map[string]string) map[string]any {
	return map[string]any{
		"id":       id,
		"object":   "subscription",
		"status":   status,
		"customer": "cus_1",
		"metadata": metadata,
		"items": map[string]any{
			"object": "list",
			"data": []any{
				map[string]any{"id": "si_1", "object": "subscription_item", "price": map[string]any{"id": price, "object": "price"}},
			},
		},
	}
}

func post(r *gin.Engine, payload []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signature)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStripeWebhook_Signature(t *testing.T) {
	_, _, r := newHandler(t)
	payload := event(t, "customer.created", map[string]any{"id": "cus_1"})

	w := post(r, payload, sign(payload, "whsec_other", time.Now()))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(r, payload, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(r, payload, sign(payload, whSecret, time.Now()))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
}

func TestStripeWebhook_SubscriptionLifecycle(t *testing.T) {
	h, store, r := newHandler(t)
	ctx := context.Background()

	created, err := store.FindOrCreate(ctx, "acct1", "owner1")
	require.NoError(t, err)
	_, err = h.Registry.Get("acct1", "owner1", plans.Free, created.UpdatedAt)
	require.NoError(t, err)

	payload := event(t, "customer.subscription.created",
		subscription("sub_1", "active", "price_biz", map[string]string{"account_id": "acct1"}))
	w := post(r, payload, sign(payload, whSecret, time.Now()))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	acct, err := store.FindByID(ctx, "acct1")
	require.NoError(t, err)
	assert.Equal(t, plans.Business, acct.Plan)
	require.NotNil(t, acct.StripeCustomerID)
	assert.Equal(t, "cus_1", *acct.StripeCustomerID)
	require.NotNil(t, acct.StripeSubscriptionID)
	assert.Equal(t, "sub_1", *acct.StripeSubscriptionID)
	assert.Equal(t, 0, h.Registry.Len(), "plan change drops the session")

	// no metadata: located by subscription id
	payload = event(t, "customer.subscription.updated", subscription("sub_1", "past_due", "price_biz", nil))
	w = post(r, payload, sign(payload, whSecret, time.Now()))
	require.Equal(t, http.StatusOK, w.Code)

	acct, err = store.FindByID(ctx, "acct1")
	require.NoError(t, err)
	assert.Equal(t, plans.Free, acct.Plan)
	require.NotNil(t, acct.StripeSubscriptionStatus)
	assert.Equal(t, "past_due", *acct.StripeSubscriptionStatus)

	payload = event(t, "customer.subscription.updated", subscription("sub_1", "trialing", "price_pro", nil))
	w = post(r, payload, sign(payload, whSecret, time.Now()))
	require.Equal(t, http.StatusOK, w.Code)

	acct, err = store.FindByID(ctx, "acct1")
	require.NoError(t, err)
	assert.Equal(t, plans.Pro, acct.Plan)

	payload = event(t, "customer.subscription.deleted", map[string]any{"id": "sub_1", "object": "subscription"})
	w = post(r, payload, sign(payload, whSecret, time.Now()))
	require.Equal(t, http.StatusOK, w.Code)

	acct, err = store.FindByID(ctx, "acct1")
	require.NoError(t, err)
	assert.Equal(t, plans.Free, acct.Plan)
	assert.Equal(t, "canceled", *acct.StripeSubscriptionStatus)
}

func TestStripeWebhook_UnknownAccountOrPrice(t *testing.T) {
	_, store, r := newHandler(t)
	ctx := context.Background()

	payload := event(t, "customer.subscription.created",
		subscription("sub_9", "active", "price_biz", map[string]string{"account_id": "ghost"}))
	w := post(r, payload, sign(payload, whSecret, time.Now()))
	assert.Equal(t, http.StatusOK, w.Code)

	_, err := store.FindOrCreate(ctx, "acct1", "owner1")
	require.NoError(t, err)

	payload = event(t, "customer.subscription.created",
		subscription("sub_2", "active", "price_unknown", map[string]string{"account_id": "acct1"}))
	w = post(r, payload, sign(payload, whSecret, time.Now()))
	require.Equal(t, http.StatusOK, w.Code)

	acct, err := store.FindByID(ctx, "acct1")
	require.NoError(t, err)
	assert.Equal(t, plans.Free, acct.Plan)
	assert.Nil(t, acct.StripeSubscriptionID)
}

func TestStripeWebhook_MissingSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{Log: zap.NewNop()}
	r := gin.New()
	r.POST("/webhook", h.StripeWebhook)

	w := post(r, []byte(`{}`), "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

type failingStore struct {
	*accounts.MemoryStore
}

func (failingStore) ApplyBilling(context.Context, string, accounts.BillingUpdate) error {
	return errors.New(`pq: relation "accounts" does not exist`)
}

func TestStripeWebhook_StoreFailureHidesDetails(t *testing.T) {
	h, store, r := newHandler(t)
	_, err := store.FindOrCreate(context.Background(), "acct1", "owner1")
	require.NoError(t, err)
	h.Store = failingStore{MemoryStore: store}

	for _, typ := range []string{"customer.subscription.updated", "customer.subscription.deleted"} {
		t.Run(typ, func(t *testing.T) {
			payload := event(t, typ,
				subscription("sub_1", "active", "price_pro", map[string]string{"account_id": "acct1"}))
			w := post(r, payload, sign(payload, whSecret, time.Now()))

			require.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":"Failed to process subscription"}`, w.Body.String())
			assert.NotContains(t, w.Body.String(), "pq:")
		})
	}
}
