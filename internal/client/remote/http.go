package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"inflo_backend/internal/dto"
	"inflo_backend/internal/logger"
	"inflo_backend/internal/models"
	"inflo_backend/internal/services"
	"inflo_backend/pkg/apperrors"

	"github.com/sethvargo/go-retry"
)

// HTTPService talks to a running inflo server over its REST API. Transport
// errors and 5xx responses are retried with exponential backoff; 4xx
// responses are the caller's problem and returned immediately.
type HTTPService struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64

	mu    sync.RWMutex
	token string
}

type HTTPOptions struct {
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts int
}

func NewHTTPService(opts HTTPOptions) *HTTPService {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.RetryAttempts <= 0 {
		opts.RetryAttempts = 3
	}
	return &HTTPService{
		baseURL:    opts.BaseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
		maxRetries: uint64(opts.RetryAttempts),
	}
}

// SetToken installs the bearer token used on authenticated routes.
func (s *HTTPService) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *HTTPService) currentToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// doJSON performs one API call with retries. body and out may be nil.
func (s *HTTPService) doJSON(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	backoff := retry.WithMaxRetries(s.maxRetries, retry.NewExponential(100*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		if token := s.currentToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			logger.CtxWarn(ctx, "Request failed, retrying", "method", method, "path", path, "error", err.Error())
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}

		if resp.StatusCode >= 500 {
			logger.CtxWarn(ctx, "Server error, retrying", "method", method, "path", path, "status", resp.StatusCode)
			return retry.RetryableError(decodeAPIError(data, resp.StatusCode))
		}
		if resp.StatusCode >= 400 {
			return decodeAPIError(data, resp.StatusCode)
		}

		if out != nil {
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
		}
		return nil
	})
}

// decodeAPIError maps a server error body back into an AppError so callers
// see the same error shape in mock and HTTP modes.
func decodeAPIError(data []byte, status int) error {
	var envelope apperrors.ErrorResponse
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != nil && envelope.Error.Code != "" {
		envelope.Error.HTTPCode = status
		return envelope.Error
	}
	return apperrors.New(apperrors.CodeExternalServiceError, "remote", fmt.Sprintf("unexpected status %d", status), status)
}

func (s *HTTPService) SendOTP(ctx context.Context, phone string) error {
	return s.doJSON(ctx, http.MethodPost, "/api/v1/auth/send-otp", dto.SendOTPRequest{PhoneNumber: phone}, nil)
}

func (s *HTTPService) VerifyOTP(ctx context.Context, phone, code string) (string, error) {
	var resp dto.VerifyOTPResponse
	err := s.doJSON(ctx, http.MethodPost, "/api/v1/auth/verify-otp", dto.VerifyOTPRequest{PhoneNumber: phone, OTP: code}, &resp)
	if err != nil {
		return "", err
	}
	s.SetToken(resp.Token)
	return resp.Token, nil
}

func (s *HTTPService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, string, error) {
	var resp dto.CreateUserResponse
	if err := s.doJSON(ctx, http.MethodPost, "/api/v1/users", req, &resp); err != nil {
		return nil, "", err
	}
	s.SetToken(resp.Token)
	return resp.User, resp.Token, nil
}

func (s *HTTPService) UpdateUser(ctx context.Context, upd *models.UserUpdate) (*models.User, error) {
	var user models.User
	if err := s.doJSON(ctx, http.MethodPatch, "/api/v1/users/me", upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *HTTPService) GetCampaigns(ctx context.Context, filters services.CampaignFilters) ([]models.Campaign, error) {
	query := url.Values{}
	if filters.Status != "" {
		query.Set("status", string(filters.Status))
	}
	if filters.BrandID != "" {
		query.Set("brandId", filters.BrandID)
	}
	if filters.Category != "" {
		query.Set("category", filters.Category)
	}
	if filters.MinBudget > 0 {
		query.Set("minBudget", strconv.FormatFloat(filters.MinBudget, 'f', -1, 64))
	}
	if filters.CreatorRelevant {
		query.Set("creatorRelevant", "true")
	}

	path := "/api/v1/campaigns"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var campaigns []models.Campaign
	if err := s.doJSON(ctx, http.MethodGet, path, nil, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (s *HTTPService) CreateCampaign(ctx context.Context, req *dto.CreateCampaignRequest) (*models.Campaign, error) {
	var resp struct {
		Success  bool             `json:"success"`
		Campaign *models.Campaign `json:"campaign"`
	}
	if err := s.doJSON(ctx, http.MethodPost, "/api/v1/campaigns", req, &resp); err != nil {
		return nil, err
	}
	return resp.Campaign, nil
}

func (s *HTTPService) ApplyCampaign(ctx context.Context, campaignID, creatorID string) error {
	body := dto.ApplyCampaignRequest{CreatorID: creatorID}
	return s.doJSON(ctx, http.MethodPost, "/api/v1/campaigns/"+url.PathEscape(campaignID)+"/apply", body, nil)
}

func (s *HTTPService) ApproveCampaignApplication(ctx context.Context, campaignID, creatorID string) (string, error) {
	body := dto.ApproveApplicationRequest{CreatorID: creatorID}
	var resp dto.ApproveApplicationResponse
	err := s.doJSON(ctx, http.MethodPost, "/api/v1/campaigns/"+url.PathEscape(campaignID)+"/approve", body, &resp)
	if err != nil {
		return "", err
	}
	return resp.AffiliateLink, nil
}

func (s *HTTPService) GetCreators(ctx context.Context, filters services.CreatorFilters) ([]models.CreatorProfile, error) {
	query := url.Values{}
	if filters.Category != "" {
		query.Set("category", filters.Category)
	}
	if filters.MinFollowers > 0 {
		query.Set("minFollowers", strconv.Itoa(filters.MinFollowers))
	}

	path := "/api/v1/creators"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var creators []models.CreatorProfile
	if err := s.doJSON(ctx, http.MethodGet, path, nil, &creators); err != nil {
		return nil, err
	}
	return creators, nil
}

func (s *HTTPService) PurchaseSubscription(ctx context.Context, plan models.SubscriptionPlan, paymentMethodID string) (string, error) {
	body := dto.PurchaseSubscriptionRequest{Plan: plan, PaymentMethodID: paymentMethodID}
	var resp dto.PurchaseSubscriptionResponse
	if err := s.doJSON(ctx, http.MethodPost, "/api/v1/billing/subscribe", body, &resp); err != nil {
		return "", err
	}
	return resp.SubscriptionID, nil
}

func (s *HTTPService) GetPaymentHistory(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.doJSON(ctx, http.MethodGet, "/api/v1/billing/payments", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *HTTPService) UploadImage(ctx context.Context, fileName string) (string, error) {
	var resp dto.UploadImageResponse
	if err := s.doJSON(ctx, http.MethodPost, "/api/v1/content/upload", dto.UploadImageRequest{FileName: fileName}, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (s *HTTPService) SubmitContent(ctx context.Context, campaignID, imageURL, description string) (*models.ContentSubmission, error) {
	body := dto.SubmitContentRequest{CampaignID: campaignID, ImageURL: imageURL, Description: description}
	var resp struct {
		Success    bool                      `json:"success"`
		Submission *models.ContentSubmission `json:"submission"`
	}
	if err := s.doJSON(ctx, http.MethodPost, "/api/v1/content/submit", body, &resp); err != nil {
		return nil, err
	}
	return resp.Submission, nil
}
