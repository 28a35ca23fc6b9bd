package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jadwal/internal/ports/input"
)

type courseRequest struct {
	Code           string `json:"code" binding:"required,max=20"`
	Name           string `json:"name" binding:"required"`
	Credits        int    `json:"credits" binding:"gte=0,lte=24"`
	InstructorName string `json:"instructorName"`
}

type roomRequest struct {
	Name     string `json:"name" binding:"required"`
	Building string `json:"building"`
	Capacity int    `json:"capacity" binding:"gte=0"`
}

func (r courseRequest) toInput() input.CourseInput {
	return input.CourseInput{Code: r.Code, Name: r.Name, Credits: r.Credits, InstructorName: r.InstructorName}
}

func (r roomRequest) toInput() input.RoomInput {
	return input.RoomInput{Name: r.Name, Building: r.Building, Capacity: r.Capacity}
}

func (s *Server) listCourses(c *gin.Context) {
	courses, err := s.courses.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusOK, "", gin.H{"courses": courses})
}

func (s *Server) getCourse(c *gin.Context) {
	course, err := s.courses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusOK, "", gin.H{"course": course})
}

func (s *Server) createCourse(c *gin.Context) {
	var req courseRequest
	if err := bind(c, &req); err != nil {
		s.fail(c, err)
		return
	}
	course, err := s.courses.Create(c.Request.Context(), req.toInput())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusCreated, "ok.saved", gin.H{"course": course})
}

func (s *Server) updateCourse(c *gin.Context) {
	var req courseRequest
	if err := bind(c, &req); err != nil {
		s.fail(c, err)
		return
	}
	course, err := s.courses.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusOK, "ok.saved", gin.H{"course": course})
}

func (s *Server) deleteCourse(c *gin.Context) {
	if err := s.courses.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusOK, "ok.deleted", nil)
}

func (s *Server) listRooms(c *gin.Context) {
	rooms, err := s.rooms.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusOK, "", gin.H{"rooms": rooms})
}

func (s *Server) getRoom(c *gin.Context) {
	room, err := s.rooms.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusOK, "", gin.H{"room": room})
}

func (s *Server) createRoom(c *gin.Context) {
	var req roomRequest
	if err := bind(c, &req); err != nil {
		s.fail(c, err)
		return
	}
	room, err := s.rooms.Create(c.Request.Context(), req.toInput())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusCreated, "ok.saved", gin.H{"room": room})
}

func (s *Server) updateRoom(c *gin.Context) {
	var req roomRequest
	if err := bind(c, &req); err != nil {
		s.fail(c, err)
		return
	}
	room, err := s.rooms.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusOK, "ok.saved", gin.H{"room": room})
}

func (s *Server) deleteRoom(c *gin.Context) {
	if err := s.rooms.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusOK, "ok.deleted", nil)
}
