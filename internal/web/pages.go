// Package web renders the two static marketing pages: the landing page
// and the product tour.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded page templates. Names are the file
// names, e.g. "index.html".
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}

type Feature struct {
	Title       string
	Description string
}

type Testimonial struct {
	Name     string
	Business string
	Quote    string
}

type Step struct {
	Number      int
	Title       string
	Description string
}

type Page struct {
	Title        string
	Features     []Feature
	Testimonials []Testimonial
	Steps        []Step
	Benefits     []string
	Actions      []Link
}

type Link struct {
	Label string
	Path  string
}

func IndexPage() Page {
	return Page{
		Title: "Gestiona tu negocio con inteligencia",
		Features: []Feature{
			{"Gestión de Citas", "Sistema completo para agendar y gestionar citas de manera eficiente."},
			{"Gestión de Clientes", "Mantén un registro detallado de todos tus clientes y su historial."},
			{"Horarios Flexibles", "Configura horarios de trabajo personalizados para tu negocio."},
			{"Servicios Personalizados", "Define tus servicios con precios y duraciones específicas."},
			{"Reservas Instantáneas", "Tus clientes pueden reservar directamente desde tu enlace público."},
			{"Datos Seguros", "Toda tu información está protegida con la mejor seguridad."},
		},
		Testimonials: []Testimonial{
			{"María García", "Salón de Belleza Luna", "Desde que uso esta plataforma, he aumentado mis reservas un 40%. Es muy fácil de usar."},
			{"Carlos Ruiz", "Centro de Masajes", "La gestión de horarios es perfecta. Nunca más se superponen las citas."},
			{"Ana López", "Consultorio Dental", "Mis pacientes pueden reservar citas 24/7. Ha mejorado mucho la experiencia del cliente."},
		},
		Actions: []Link{
			{"Comenzar gratis", "/auth"},
			{"Ver negocios", "/businesses"},
			{"Ver demo", "/demo"},
		},
	}
}

func DemoPage() Page {
	return Page{
		Title: "Descubre nuestra plataforma",
		Features: []Feature{
			{"Gestión de Citas", "Administra todas tus citas desde un solo lugar"},
			{"Base de Clientes", "Mantén toda la información de tus clientes organizada"},
			{"Configuración de Servicios", "Define precios, duración y detalles de cada servicio"},
			{"Reportes y Analytics", "Analiza el rendimiento de tu negocio con reportes detallados"},
		},
		Steps: []Step{
			{1, "Regístrate", "Crea tu cuenta gratuita en menos de 2 minutos"},
			{2, "Configura tu Negocio", "Añade tus servicios, horarios y información básica"},
			{3, "Comparte tu Enlace", "Tus clientes pueden reservar directamente desde tu enlace personalizado"},
			{4, "Gestiona y Crece", "Agenda citas fácilmente con nuestro calendario intuitivo"},
		},
		Benefits: []string{
			"Reduce el tiempo de gestión en 3 horas diarias",
			"Aumenta tus reservas hasta un 40%",
			"Elimina las citas duplicadas y errores",
			"Mejora la satisfacción del cliente",
			"Acceso 24/7 desde cualquier dispositivo",
			"Notificaciones automáticas por email y SMS",
		},
		Testimonials: []Testimonial{
			{"Carmen Rodríguez", "Propietaria, Salón Carmen", "Desde que uso esta plataforma, he aumentado mis reservas un 40%. Es muy fácil de usar."},
		},
		Actions: []Link{
			{"Comenzar gratis", "/auth"},
			{"Explorar negocios", "/businesses"},
		},
	}
}
