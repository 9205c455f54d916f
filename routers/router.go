package routers

import (
	"hbs/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes registers every entity group under /api/v1. Pure
// configuration; all behavior lives in the controllers.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/v1")

	hotel := controllers.NewHotelController(db)
	hotels := api.Group("/hotels")
	hotels.Get("/getAll", hotel.GetAllHotels)
	hotels.Post("/create", hotel.CreateHotel)
	hotels.Patch("/update/:id", hotel.UpdateHotel)
	hotels.Delete("/delete/:id", hotel.DeleteHotel)

	room := controllers.NewRoomController(db)
	rooms := api.Group("/rooms")
	rooms.Get("/getAll", room.GetAllRooms)
	rooms.Post("/create", room.CreateRoom)
	rooms.Patch("/update/:id", room.UpdateRoom)
	rooms.Delete("/delete/:id", room.DeleteRoom)

	review := controllers.NewReviewController(db)
	reviews := api.Group("/reviews")
	reviews.Get("/getAll", review.GetAllReviews)
	reviews.Get("/get/:id", review.GetReviewById)
	reviews.Post("/create", review.CreateReview)
	reviews.Patch("/update/:id", review.UpdateReview)
	reviews.Delete("/delete/:id", review.DeleteReview)

	user := controllers.NewUserController(db)
	users := api.Group("/users")
	users.Get("/getAll", user.GetAllUsers)
	users.Post("/create", user.CreateUser)
	users.Patch("/update/:id", user.UpdateUser)
	users.Delete("/delete/:id", user.DeleteUser)

	roomAmenity := controllers.NewRoomAmenityController(db)
	roomAmenities := api.Group("/room_amenity")
	roomAmenities.Get("/getAll", roomAmenity.GetAllRoomAmenities)
	roomAmenities.Get("/get/:id", roomAmenity.GetRoomAmenityById)
	roomAmenities.Post("/create", roomAmenity.CreateRoomAmenity)
	roomAmenities.Patch("/update/:id", roomAmenity.UpdateRoomAmenity)
	roomAmenities.Delete("/delete/:id", roomAmenity.DeleteRoomAmenity)

	promotion := controllers.NewPromotionController(db)
	promotions := api.Group("/promotions")
	promotions.Get("/getAll", promotion.GetAllPromotions)
	promotions.Get("/get/:id", promotion.GetPromotionById)
	promotions.Post("/create", promotion.CreatePromotion)
	promotions.Patch("/update/:id", promotion.UpdatePromotion)
	promotions.Delete("/delete/:id", promotion.DeletePromotion)

	paymentRecord := controllers.NewPaymentRecordController(db)
	paymentRecords := api.Group("/payment_record")
	paymentRecords.Get("/getAll", paymentRecord.GetAllPaymentRecords)
	paymentRecords.Get("/get/:id", paymentRecord.GetPaymentRecordById)
	paymentRecords.Post("/create", paymentRecord.CreatePaymentRecord)
	paymentRecords.Patch("/update/:id", paymentRecord.UpdatePaymentRecord)
	paymentRecords.Delete("/delete/:id", paymentRecord.DeletePaymentRecord)

	service := controllers.NewServiceController(db)
	services := api.Group("/services")
	services.Get("/getAll", service.GetAllServices)
	services.Get("/get/:id", service.GetServiceById)
	services.Post("/create", service.CreateService)
	services.Patch("/update/:id", service.UpdateService)
	services.Delete("/delete/:id", service.DeleteService)

	reservation := controllers.NewReservationController(db)
	reservations := api.Group("/reservations")
	reservations.Get("/getAll", reservation.GetAllReservations)
	reservations.Post("/create", reservation.CreateReservation)
	reservations.Patch("/update/:id", reservation.UpdateReservation)
	reservations.Delete("/delete/:id", reservation.DeleteReservation)

	serviceReservation := controllers.NewServiceReservationController(db)
	serviceReservations := api.Group("/service_reservation")
	serviceReservations.Get("/getAll", serviceReservation.GetAllServiceReservations)
	serviceReservations.Get("/get/:id", serviceReservation.GetServiceReservationById)
	serviceReservations.Post("/create", serviceReservation.CreateServiceReservation)
	serviceReservations.Patch("/update/:id", serviceReservation.UpdateServiceReservation)
	serviceReservations.Delete("/delete/:id", serviceReservation.DeleteServiceReservation)
}
