// Package docs Tourism Backend API.
//
// Бэкенд туристического приложения. Строит фид мест по интересам
// на основе Google Places, отдает карточки мест, статьи блога по городам,
// рекламные баннеры и диалоги с AI-гидом по WebSocket.
//
// Основные возможности:
// - Фид мест города по интересам с секциями popular и recommended
// - Карточки мест с фотографиями, отзывами и часами работы
// - Регистрация, вход и восстановление пароля
// - AI-гид: подбор мест по свободному сообщению пользователя
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
