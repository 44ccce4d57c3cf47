package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/gitCabezas/PontoJovem/api"
	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/access"
	"github.com/gitCabezas/PontoJovem/internal/format"
	"github.com/gitCabezas/PontoJovem/internal/server/models"
)

// API implements the HTTP handlers. Handlers hold no state of their own,
// everything comes from the server and the per-request database transaction.
type API struct {
	server *Server
}

func (a *API) CreateUser(c *gin.Context, r *api.CreateUserRequest) (*api.CreateUserResponse, error) {
	password := r.Password
	if password == "" {
		// older app builds send the credential as senha_hash
		password = r.SenhaHash
	}
	if password == "" {
		return nil, fmt.Errorf("%w: senha é obrigatória", internal.ErrBadRequest)
	}

	user, err := access.CreateUser(getDB(c), r.Nome, r.Email, password, r.DataNascimento)
	if err != nil {
		return nil, err
	}

	return &api.CreateUserResponse{
		Success: true,
		Message: "Usuário criado com sucesso",
		Data:    apiUser(user),
	}, nil
}

func (a *API) Login(c *gin.Context, r *api.LoginRequest) (*api.LoginResponse, error) {
	user, err := access.Authenticate(getDB(c), r.Email, r.Password)
	if err != nil {
		return nil, err
	}

	return &api.LoginResponse{
		Success: true,
		Message: "Login realizado com sucesso",
		Data:    apiUser(user),
	}, nil
}

func (a *API) GetUser(c *gin.Context, r *api.GetUserRequest) (*api.GetUserResponse, error) {
	user, err := access.GetUser(getDB(c), r.ID)
	if err != nil {
		return nil, err
	}

	return &api.GetUserResponse{Success: true, Data: apiUser(user)}, nil
}

func (a *API) UpdateUser(c *gin.Context, r *api.UpdateUserRequest) (*api.UpdateUserResponse, error) {
	user, err := access.UpdateUser(getDB(c), r.ID, access.UserUpdate{
		Name:      r.Nome,
		Email:     r.Email,
		BirthDate: r.DataNascimento,
	})
	if err != nil {
		return nil, err
	}

	return &api.UpdateUserResponse{Success: true, Data: apiUser(user)}, nil
}

// apiUser converts the stored user to its API shape. The birth date goes out
// in the Brazilian format the app displays.
func apiUser(user *models.User) api.User {
	out := api.User{
		ID:    user.ID,
		Nome:  user.Name,
		Email: user.Email,
	}
	if user.BirthDate != nil {
		br := format.DateBR(*user.BirthDate)
		out.DataNascimento = &br
	}
	return out
}
