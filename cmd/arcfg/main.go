// Command arcfg parses AUTOSAR ECU configuration documents (arxml value
// files, bswmd definition files and xdm variant files) into a normalized
// container tree, and drives instance operations on the resulting
// configuration model.
//
// Usage:
//
//	arcfg parse Lin_Cfg.arxml
//	arcfg parse --format text *.arxml
//	arcfg details Lin.xdm Lin/LinGeneral
//	arcfg instances Lin.xdm --container Lin/LinGlobalConfig/LinChannel --create 2
//	arcfg validate configs/*.arxml
package main

func main() {
	Execute()
}
