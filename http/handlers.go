// quickmemo/http/handlers.go
package http

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ViniZap4/quickmemo/domain"
	"github.com/ViniZap4/quickmemo/filesystem"
)

// Server exposes the memo directory over HTTP. Storage access is serialized;
// concurrent writers to the same memo are last-write-wins.
type Server struct {
	storage *filesystem.Storage
	log     zerolog.Logger
	mu      sync.Mutex
}

func NewServer(storage *filesystem.Storage, log zerolog.Logger) *Server {
	return &Server{
		storage: storage,
		log:     log.With().Str("component", "http").Logger(),
	}
}

type memoRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewApp builds the fiber app with every route behind authMW.
func NewApp(s *Server, authMW fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	api := app.Group("/api", authMW)
	api.Get("/memos", s.HandleMemos)
	api.Post("/memos", s.HandleCreateMemo)
	api.Get("/memos/:id", s.HandleGetMemo)
	api.Put("/memos/:id", s.HandleUpdateMemo)
	api.Delete("/memos/:id", s.HandleDeleteMemo)

	return app
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
	case errors.Is(err, domain.ErrNotFound):
		code = fiber.StatusNotFound
	}

	if code >= fiber.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func (s *Server) HandleMemos(c *fiber.Ctx) error {
	s.mu.Lock()
	memos, err := s.storage.LoadAll()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	memos = domain.Filter(memos, c.Query("q"))
	if memos == nil {
		memos = []*domain.Memo{}
	}
	return c.JSON(memos)
}

func (s *Server) HandleGetMemo(c *fiber.Ctx) error {
	s.mu.Lock()
	memo, err := s.storage.Find(c.Params("id"))
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return c.JSON(memo)
}

func (s *Server) HandleCreateMemo(c *fiber.Ctx) error {
	var req memoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.Title == "" {
		req.Title = domain.DefaultTitle
	}

	memo := domain.NewMemo(req.Title, req.Content)

	s.mu.Lock()
	err := s.storage.Save(memo)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.log.Info().Str("id", memo.ID).Msg("memo created")
	return c.Status(fiber.StatusCreated).JSON(memo)
}

func (s *Server) HandleUpdateMemo(c *fiber.Ctx) error {
	var req memoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	memo, err := s.storage.Find(c.Params("id"))
	if err != nil {
		return err
	}

	memo.Update(req.Title, req.Content)
	if err := s.storage.Save(memo); err != nil {
		return err
	}

	return c.JSON(memo)
}

func (s *Server) HandleDeleteMemo(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	memo, err := s.storage.Find(c.Params("id"))
	if err != nil {
		return err
	}
	if err := s.storage.Delete(memo); err != nil {
		return err
	}

	s.log.Info().Str("id", memo.ID).Msg("memo deleted")
	return c.SendStatus(fiber.StatusNoContent)
}
