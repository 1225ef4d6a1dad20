package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/idealmodas/crediario/internal/entity"
)

// Client fala com o serviço de crediário. Usado pelo formulário
// público e pelo painel.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	var output LoginOutput
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", input, &output); err != nil {
		return nil, err
	}
	return &output, nil
}

func (c *Client) CriarPreCadastro(ctx context.Context, input PreCadastroInput) (*PreCadastroOutput, error) {
	var output PreCadastroOutput
	if err := c.do(ctx, http.MethodPost, "/pre-cadastro", "", input, &output); err != nil {
		return nil, err
	}
	return &output, nil
}

func (c *Client) ListarCadastros(ctx context.Context, token string) ([]entity.CreditApplication, error) {
	var rows []entity.CreditApplication
	if err := c.do(ctx, http.MethodGet, "/cadastros", token, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) AtualizarStatus(ctx context.Context, token string, id int64, input UpdateStatusInput) (*UpdateStatusOutput, error) {
	var output UpdateStatusOutput
	path := fmt.Sprintf("/cadastros/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, input, &output); err != nil {
		return nil, err
	}
	return &output, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("erro ao gerar json: %w", err)
		}
		body = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro na requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// A mensagem do servidor sobe crua para quem chamou.
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("%s", apiErr.Message)
		}
		return fmt.Errorf("erro na API (status %d)", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar resposta: %w", err)
	}
	return nil
}
