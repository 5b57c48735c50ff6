// Command antorchactl tareas de operación sobre el almacenamiento de la tienda:
// importar y exportar el catálogo, generar o enviar el resumen diario y
// consultar el modo de almacenamiento.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
