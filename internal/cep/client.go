package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrInvalidCEP = errors.New("cep inválido")
	ErrNotFound   = errors.New("cep não encontrado")
)

const defaultBaseURL = "https://viacep.com.br"

// Address é o resultado da consulta de CEP no ViaCEP.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
}

// Client consulta endereços no ViaCEP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient cria um cliente ViaCEP com timeout curto: a consulta roda no
// caminho de uma requisição pública.
func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// NewClientWithBaseURL permite apontar para outro endpoint (testes).
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// Lookup consulta o CEP (8 dígitos, com ou sem hífen) e devolve o endereço.
func (c *Client) Lookup(ctx context.Context, code string) (*Address, error) {
	code, ok := Normalize(code)
	if !ok {
		return nil, ErrInvalidCEP
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("consultar viacep: %w", err)
	}
	defer resp.Body.Close()

	// O ViaCEP responde 400 para formato inválido e 200 com {"erro": true}
	// para CEP bem formado porém inexistente.
	if resp.StatusCode == http.StatusBadRequest {
		return nil, ErrInvalidCEP
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("viacep respondeu status %d", resp.StatusCode)
	}

	var payload struct {
		Address
		Erro bool `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decodificar resposta do viacep: %w", err)
	}
	if payload.Erro {
		return nil, ErrNotFound
	}
	return &payload.Address, nil
}

// Normalize remove pontuação e valida que o CEP tem exatamente 8 dígitos.
func Normalize(code string) (string, bool) {
	digits := make([]byte, 0, 8)
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case ch >= '0' && ch <= '9':
			digits = append(digits, ch)
		case ch == '-' || ch == '.' || ch == ' ':
			// pontuação tolerada
		default:
			return "", false
		}
	}
	if len(digits) != 8 {
		return "", false
	}
	return string(digits), true
}
