package main

import (
	"atlas-sorter/catalog"
	"atlas-sorter/container"
	"atlas-sorter/database"
	"atlas-sorter/interaction"
	"atlas-sorter/kafka/consumer"
	interaction2 "atlas-sorter/kafka/consumer/interaction"
	"atlas-sorter/kafka/producer"
	"atlas-sorter/logger"
	"atlas-sorter/permission"
	"atlas-sorter/rest"
	"atlas-sorter/service"
	"atlas-sorter/slot"
	"os"
)

const serviceName = "atlas-sorter"
const consumerGroupId = "Container Sorter Service"

type Server struct {
	baseUrl string
	prefix  string
}

func (s Server) GetBaseURL() string {
	return s.baseUrl
}

func (s Server) GetPrefix() string {
	return s.prefix
}

func GetServer() Server {
	return Server{
		baseUrl: "",
		prefix:  "/api/",
	}
}

func main() {
	l := logger.CreateLogger(serviceName)
	l.Infoln("Starting main service.")
	l.Infoln("Middle click on an empty container slot sorts that container.")
	l.Infoln("Events already cancelled by other handlers are ignored.")
	l.Infof("Actors with permission [%s] set to false are never sorted.", permission.NameSort)

	tdm := service.GetTeardownManager()

	c, err := catalog.Load()
	if err != nil {
		l.WithError(err).Fatal("Unable to load item catalog.")
	}
	catalog.Registry().Set(c)
	l.Infof("Loaded [%d] item definitions.", c.Size())

	db := database.Connect(l, database.SetMigrations(container.Migration, slot.Migration, permission.Migration))

	cm := consumer.GetManager()
	interaction2.InitConsumers(l)(cm.AddConsumer(l, tdm.Context(), tdm.WaitGroup()))(consumerGroupId)
	interaction2.InitHandlers(l)(db)(cm.RegisterHandler)
	cm.Start()

	rest.New(l).
		WithContext(tdm.Context()).
		WithWaitGroup(tdm.WaitGroup()).
		SetBasePath(GetServer().GetPrefix()).
		SetPort(os.Getenv("REST_PORT")).
		AddRouteInitializer(container.InitResource(GetServer())(db)).
		AddRouteInitializer(permission.InitResource(GetServer())(db)).
		AddRouteInitializer(interaction.InitResource(GetServer())(db)).
		Run()

	tdm.TeardownFunc(producer.Teardown(l))

	tdm.Wait()
	l.Infoln("Service shutdown.")
}
