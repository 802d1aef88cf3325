// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/arcent/internal/config"
	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/internal/utils"
	"github.com/MKhiriev/arcent/models"
)

const (
	headerProject = "X-Appwrite-Project"
	headerSession = "X-Appwrite-Session"

	documentsPath = "/databases/{databaseId}/collections/{collectionId}/documents"
	documentPath  = documentsPath + "/{documentId}"
)

type httpBaaSAdapter struct {
	client   *utils.HTTPClient
	endpoint string
	cfg      config.Remote

	mu      sync.RWMutex
	session string

	logger *logger.Logger
}

// NewHTTPBaaSAdapter constructs the REST implementation of [BaaSAdapter]. The
// endpoint from cfg is normalised and used as the base URL; requests are
// limited to cfg.RequestsPerSecond and bounded by cfg.RequestTimeout.
//
// Returns [ErrRemoteNotConfigured] when cfg.Endpoint is empty.
func NewHTTPBaaSAdapter(cfg config.Remote, logger *logger.Logger) (BaaSAdapter, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, ErrRemoteNotConfigured
	}

	endpoint, err := normalizeBaseURL(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid remote endpoint: %w", err)
	}

	client := utils.NewHTTPClient().WithRateLimit(cfg.RequestsPerSecond)
	client.
		SetBaseURL(endpoint).
		SetTimeout(cfg.RequestTimeout).
		SetHeader(headerProject, cfg.ProjectID).
		SetHeader("Accept", "application/json")

	return &httpBaaSAdapter{
		client:   client,
		endpoint: endpoint,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBaaSAdapter) SetSession(secret string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = strings.TrimSpace(secret)
}

func (h *httpBaaSAdapter) Session() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session
}

func (h *httpBaaSAdapter) GetAccount(ctx context.Context) (models.Account, error) {
	var account models.Account

	resp, err := h.authedRequest(ctx).
		SetResult(&account).
		Get("/account")
	if err != nil {
		h.logger.Err(err).Str("func", "httpBaaSAdapter.GetAccount").Msg("account request failed")
		return models.Account{}, fmt.Errorf("get account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

func (h *httpBaaSAdapter) ListDocuments(ctx context.Context, queries []Query) (DocumentList, error) {
	var list DocumentList

	values := url.Values{}
	for _, q := range queries {
		values.Add("queries[]", q.String())
	}

	resp, err := h.collectionRequest(ctx).
		SetQueryParamsFromValues(values).
		SetResult(&list).
		Get(documentsPath)
	if err != nil {
		h.logger.Err(err).Str("func", "httpBaaSAdapter.ListDocuments").Msg("list documents request failed")
		return DocumentList{}, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return DocumentList{}, err
	}

	return list, nil
}

func (h *httpBaaSAdapter) CreateDocument(ctx context.Context, id string, data map[string]any, permissions []string) (Document, error) {
	var doc Document

	resp, err := h.collectionRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"documentId":  id,
			"data":        data,
			"permissions": permissions,
		}).
		SetResult(&doc).
		Post(documentsPath)
	if err != nil {
		h.logger.Err(err).Str("func", "httpBaaSAdapter.CreateDocument").Str("id", id).Msg("create document request failed")
		return Document{}, fmt.Errorf("create document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Document{}, err
	}

	return doc, nil
}

func (h *httpBaaSAdapter) UpdateDocument(ctx context.Context, id string, data map[string]any, permissions []string) (Document, error) {
	var doc Document

	body := map[string]any{"data": data}
	if len(permissions) > 0 {
		body["permissions"] = permissions
	}

	resp, err := h.collectionRequest(ctx).
		SetPathParam("documentId", id).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&doc).
		Patch(documentPath)
	if err != nil {
		h.logger.Err(err).Str("func", "httpBaaSAdapter.UpdateDocument").Str("id", id).Msg("update document request failed")
		return Document{}, fmt.Errorf("update document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Document{}, err
	}

	return doc, nil
}

func (h *httpBaaSAdapter) DeleteDocument(ctx context.Context, id string) error {
	resp, err := h.collectionRequest(ctx).
		SetPathParam("documentId", id).
		Delete(documentPath)
	if err != nil {
		h.logger.Err(err).Str("func", "httpBaaSAdapter.DeleteDocument").Str("id", id).Msg("delete document request failed")
		return fmt.Errorf("delete document request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBaaSAdapter) CreateFile(ctx context.Context, fileID string, photo models.Photo, permissions []string) (File, error) {
	var file File

	fileName := photo.FileName
	if fileName == "" {
		fileName = fileID
	}

	resp, err := h.authedRequest(ctx).
		SetPathParam("bucketId", h.cfg.BucketID).
		SetFormDataFromValues(url.Values{
			"fileId":        {fileID},
			"permissions[]": permissions,
		}).
		SetMultipartFields(&resty.MultipartField{
			Param:       "file",
			FileName:    fileName,
			ContentType: photo.MIME,
			Reader:      bytes.NewReader(photo.Bytes),
		}).
		SetResult(&file).
		Post("/storage/buckets/{bucketId}/files")
	if err != nil {
		h.logger.Err(err).Str("func", "httpBaaSAdapter.CreateFile").Str("file_id", fileID).Msg("upload request failed")
		return File{}, fmt.Errorf("create file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return File{}, err
	}

	return file, nil
}

func (h *httpBaaSAdapter) CreateExecution(ctx context.Context, body string) (Execution, error) {
	var execution Execution

	resp, err := h.authedRequest(ctx).
		SetPathParam("functionId", h.cfg.FunctionID).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"body":    body,
			"async":   false,
			"method":  "POST",
			"headers": map[string]string{"content-type": "application/json"},
		}).
		SetResult(&execution).
		Post("/functions/{functionId}/executions")
	if err != nil {
		h.logger.Err(err).Str("func", "httpBaaSAdapter.CreateExecution").Msg("execution request failed")
		return Execution{}, fmt.Errorf("create execution request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Execution{}, err
	}

	return execution, nil
}

func (h *httpBaaSAdapter) FileViewURL(fileID string) string {
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view?project=%s",
		h.endpoint, h.cfg.BucketID, fileID, h.cfg.ProjectID)
}

func (h *httpBaaSAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if session := h.Session(); session != "" {
		req.SetHeader(headerSession, session)
	}
	return req
}

func (h *httpBaaSAdapter) collectionRequest(ctx context.Context) *resty.Request {
	return h.authedRequest(ctx).SetPathParams(map[string]string{
		"databaseId":   h.cfg.DatabaseID,
		"collectionId": h.cfg.CollectionID,
	})
}
