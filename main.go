/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/UserHub/userhub-directory-services/cmd"

func main() {
	cmd.Execute()
}
