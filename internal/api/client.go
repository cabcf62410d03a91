package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource отдает текущий access-токен. Клиент читает токен заново
// перед каждым авторизованным запросом, а не кэширует его в памяти:
// токен, обновленный где-то еще, подхватится на следующем вызове.
type TokenSource interface {
	AccessToken() (string, bool)
}

// Client выполняет запросы к REST API сервиса MathMentor.
// Один метод на пару (ресурс, операция); локального состояния,
// кроме базового URL и источника токена, у клиента нет.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient создает клиент API поверх переданного источника токенов
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// TokenPair - ответ сервера на обмен учетных данных
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Login обменивает логин и пароль на пару токенов.
// Единственный запрос без заголовка Authorization.
func (c *Client) Login(ctx context.Context, username, password string) (TokenPair, error) {
	body := map[string]string{"username": username, "password": password}

	payload, err := json.Marshal(body)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/token/", bytes.NewReader(payload))
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return TokenPair{}, &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return TokenPair{}, &AuthError{StatusCode: resp.StatusCode}
	}

	var pair TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		return TokenPair{}, fmt.Errorf("failed to decode token response: %w", err)
	}
	return pair, nil
}

// do выполняет один авторизованный запрос и разбирает JSON-ответ в out.
// Токен читается из хранилища непосредственно перед отправкой.
// Любой не-2xx ответ или сетевой сбой превращается в RequestError,
// автоматических повторов и обмена refresh-токена нет.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.tokens.AccessToken(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{
			StatusCode: resp.StatusCode,
			Message:    decodeServerMessage(resp.Body),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// decodeServerMessage пытается достать текст ошибки из тела ответа.
// Сервер кладет его в message либо в detail, тело может быть и не JSON.
func decodeServerMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Detail
}
