// Package main 启动应用程序
package main

import "github.com/igorzgk/excel-delivery-sub000/pkg/cmd"

//	@title			Excel Delivery API
//	@version		1.0
//	@description	面向小型团队的文件分发服务：管理员上传 Excel/PDF 并分配给用户，用户下载并整理自己的 PDF。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
