package guestregistry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с внешним реестром гостей
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента реестра гостей
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetGuest получает профиль гостя по ID
func (c *Client) GetGuest(ctx context.Context, guestID int64) (*Guest, error) {
	url := fmt.Sprintf("%s/internal/guests/%d", c.baseURL, guestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid guest ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrGuestNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var guest Guest
	if err := json.NewDecoder(resp.Body).Decode(&guest); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &guest, nil
}

// GetGuestWithGracefulDegradation получает профиль гостя с graceful degradation.
// Реестр гостей — вспомогательный сервис: его недоступность не должна
// блокировать создание бронирования. При любой ошибке, кроме «гость не найден»,
// возвращается ErrServiceDegraded, и вызывающая сторона продолжает без профиля.
func (c *Client) GetGuestWithGracefulDegradation(ctx context.Context, guestID int64) (*Guest, error) {
	c.log.Info("Fetching guest profile for guest_id=%d", guestID)

	guest, err := c.GetGuest(ctx, guestID)
	if err != nil {
		// Бизнес-ошибка «гость не найден» пробрасывается дальше
		if errors.Is(err, ErrGuestNotFound) {
			c.log.Info("Guest guest_id=%d not found in registry", guestID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки
		// парсинга) применяем graceful degradation.
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("GuestRegistry unavailable, applying graceful degradation for guest_id=%d: %v", guestID, err)
		return nil, fmt.Errorf("%w: guest_id=%d, error=%v", ErrServiceDegraded, guestID, err)
	}

	c.log.Info("Successfully fetched guest profile guest_id=%d, vip=%t, tier=%s", guestID, guest.IsVIP, guest.LoyaltyTier)
	return guest, nil
}
